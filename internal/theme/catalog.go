package theme

import (
	_ "embed"

	"github.com/tidwall/gjson"
)

//go:embed validate_colors.json
var catalogSchema []byte

// CatalogEntry describes one color role a theme may set
type CatalogEntry struct {
	ID    string
	Title string
}

// Catalog lists the color roles in schema order
func Catalog() []CatalogEntry {
	return parseCatalog(catalogSchema)
}

func parseCatalog(schema []byte) []CatalogEntry {
	var entries []CatalogEntry
	gjson.GetBytes(schema, "properties.colors.properties").ForEach(func(key, value gjson.Result) bool {
		entries = append(entries, CatalogEntry{
			ID:    key.String(),
			Title: value.Get("title").String(),
		})
		return true
	})
	return entries
}
