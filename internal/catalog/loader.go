package catalog

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ovenfresh/storefront/internal/models"
)

// LoadStats describes a loaded catalog for the startup log.
type LoadStats struct {
	Source     string
	Items      int
	Categories int
}

// LoadFile reads a catalog dataset from a JSON file, transparently
// decompressing when the file is gzipped. The file is read once; the
// returned catalog is immutable for the lifetime of the process.
func LoadFile(path string) (*models.Catalog, *LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	c, err := parseCatalog(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	stats := &LoadStats{
		Source:     path,
		Items:      len(c.Items),
		Categories: len(c.Categories),
	}

	return c, stats, nil
}

// parseCatalog decodes and validates a catalog dataset.
func parseCatalog(r io.Reader) (*models.Catalog, error) {
	var c models.Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	if err := validateCatalog(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// validateCatalog enforces the dataset invariants: unique item ids,
// non-negative prices, and category keys that resolve to a known category.
func validateCatalog(c *models.Catalog) error {
	if len(c.Items) == 0 {
		return fmt.Errorf("catalog contains no items")
	}

	knownCategories := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category with empty id")
		}
		if knownCategories[cat.ID] {
			return fmt.Errorf("duplicate category id: %s", cat.ID)
		}
		knownCategories[cat.ID] = true
	}

	seen := make(map[int64]bool, len(c.Items))
	for _, item := range c.Items {
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id: %d", item.ID)
		}
		seen[item.ID] = true

		if item.Price < 0 {
			return fmt.Errorf("item %d has negative price", item.ID)
		}
		if !knownCategories[item.Category] {
			return fmt.Errorf("item %d references unknown category %q", item.ID, item.Category)
		}
	}

	return nil
}
