package woocommerce

import (
	"time"

	"pharmaplus-backend/internal/domain"
)

// metaRequiresRx is the product meta key flagging prescription-only items.
const metaRequiresRx = "_requires_prescription"

// ToProduct projects an upstream product onto the storefront view.
// Price strings follow the same downgrade-to-zero policy as shipping
// costs; the upstream schema stays opaque beyond these fields.
func ToProduct(raw ProductJSON) domain.Product {
	p := domain.Product{
		ID:               raw.ID,
		Name:             raw.Name,
		Slug:             raw.Slug,
		Description:      raw.Description,
		ShortDescription: raw.ShortDescription,
		Price:            parseAmount(raw.RegularPrice),
		OnSale:           raw.OnSale,
		InStock:          raw.StockStatus == "instock",
	}
	if p.Price == 0 {
		p.Price = parseAmount(raw.Price)
	}
	if raw.OnSale && raw.SalePrice != "" {
		sale := parseAmount(raw.SalePrice)
		p.SalePrice = &sale
	}
	for _, img := range raw.Images {
		p.Images = append(p.Images, img.Src)
	}
	for _, cat := range raw.Categories {
		p.Categories = append(p.Categories, cat.Slug)
	}
	for _, meta := range raw.MetaData {
		if meta.Key == metaRequiresRx {
			if v, ok := meta.Value.(string); ok && (v == "yes" || v == "1" || v == "true") {
				p.RequiresRx = true
			}
			break
		}
	}
	return p
}

func ToCategory(raw CategoryJSON) domain.Category {
	return domain.Category{
		ID:    raw.ID,
		Name:  raw.Name,
		Slug:  raw.Slug,
		Count: raw.Count,
	}
}

func ToPage(raw PageJSON) domain.Page {
	modified, _ := time.Parse("2006-01-02T15:04:05", raw.Modified)
	return domain.Page{
		ID:       raw.ID,
		Slug:     raw.Slug,
		Title:    raw.Title.Rendered,
		Content:  raw.Content.Rendered,
		Modified: modified,
	}
}
