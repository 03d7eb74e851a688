package woocommerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProduct(t *testing.T) {
	raw := ProductJSON{
		ID:           102,
		Name:         "Ibuprofeno 400mg x20",
		Slug:         "ibuprofeno-400",
		Price:        "15500",
		RegularPrice: "18900",
		SalePrice:    "15500",
		OnSale:       true,
		StockStatus:  "instock",
		Images:       []ImageJSON{{Src: "https://cdn.example.com/ibu.webp"}},
		Categories:   []CategoryJSON{{Slug: "analgesicos"}},
	}

	p := ToProduct(raw)

	assert.Equal(t, int64(18900), p.Price)
	require.NotNil(t, p.SalePrice)
	assert.Equal(t, int64(15500), *p.SalePrice)
	assert.Equal(t, int64(15500), p.EffectivePrice())
	assert.True(t, p.InStock)
	assert.Equal(t, []string{"https://cdn.example.com/ibu.webp"}, p.Images)
	assert.Equal(t, []string{"analgesicos"}, p.Categories)
	assert.False(t, p.RequiresRx)
}

func TestToProduct_FallsBackToPrice(t *testing.T) {
	p := ToProduct(ProductJSON{ID: 1, Price: "9900", StockStatus: "instock"})
	assert.Equal(t, int64(9900), p.Price)
	assert.Equal(t, int64(9900), p.EffectivePrice())
}

func TestToProduct_PrescriptionFlag(t *testing.T) {
	p := ToProduct(ProductJSON{
		ID:       3,
		MetaData: []MetaDataJSON{{Key: "_requires_prescription", Value: "yes"}},
	})
	assert.True(t, p.RequiresRx)

	p = ToProduct(ProductJSON{
		ID:       4,
		MetaData: []MetaDataJSON{{Key: "_requires_prescription", Value: "no"}},
	})
	assert.False(t, p.RequiresRx)
}

func TestToPage(t *testing.T) {
	page := ToPage(PageJSON{
		ID:       9,
		Slug:     "quienes-somos",
		Title:    RenderedJSON{Rendered: "Quiénes Somos"},
		Content:  RenderedJSON{Rendered: "<p>Droguería de confianza.</p>"},
		Modified: "2026-01-10T09:00:00",
	})

	assert.Equal(t, "quienes-somos", page.Slug)
	assert.Equal(t, "Quiénes Somos", page.Title)
	assert.Equal(t, 2026, page.Modified.Year())
}
