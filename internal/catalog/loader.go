package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"atelier/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a catalogue document.
type Loader interface {
	// Load reads the JSON product array at path. Paths ending in ".gz" are
	// gunzipped first.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// decode parses a JSON product array, gunzipping it when gzipped is set.
func decode(r io.Reader, gzipped bool) ([]model.Product, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return products, nil
}

func isGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// fileLoader implements Loader for local catalogue files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads the catalogue file at filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalog file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decode(file, isGzip(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalog file")
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalog file loaded successfully")

	return products, nil
}

// Load builds the catalog from path using loader, or the builtin catalogue
// when path is empty.
func Load(ctx context.Context, loader Loader, path string) (*Catalog, error) {
	if path == "" {
		return New(Builtin())
	}

	products, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(products)
}
