package domain

import (
	"errors"
	"time"
)

// Page is a marketing/informational page sourced from the WordPress
// side of the upstream system (about, FAQ, shipping policy, etc.).
type Page struct {
	ID       int64     `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Content  string    `json:"content"` // rendered HTML from upstream
	Modified time.Time `json:"modified"`
}

var ErrPageNotFound = errors.New("page not found")
