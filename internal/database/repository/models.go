package repository

import (
	"net/url"
	"strings"
)

// FallbackImageURL replaces catalog image references that cannot be used.
const FallbackImageURL = "https://placehold.co/100x100/CCCCCC/000000?text=Error"

// CatalogItem represents a catalog_items row.
type CatalogItem struct {
	ID          int
	Name        string
	Description string
	ImageURL    string
}

// ImageRef returns ImageURL when it is an absolute http(s) URL and the
// fallback placeholder otherwise.
func (c CatalogItem) ImageRef() string {
	raw := strings.TrimSpace(c.ImageURL)
	if raw == "" {
		return FallbackImageURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return FallbackImageURL
	}
	return raw
}
