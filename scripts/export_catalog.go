//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"atelier/internal/catalog"
	"atelier/internal/model"
)

// Writes the built-in collection to data/catalog/products.json.gz so it can
// be edited and served through CATALOG_PATH, or uploaded under S3_PREFIX.
//
//	go run scripts/export_catalog.go [output]
func main() {
	out := filepath.Join("data", "catalog", "products.json.gz")
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := catalog.MustBuiltin().All()
	if err := writeCatalogFile(out, products); err != nil {
		log.Fatalf("Failed to write %s: %v", out, err)
	}

	fmt.Printf("Wrote %d products to %s\n", len(products), out)
}

func writeCatalogFile(filePath string, products []model.Product) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	enc := json.NewEncoder(gzipWriter)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	return nil
}
