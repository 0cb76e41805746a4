// Package feed parses supplier XML feeds into feed records.
package feed

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/xmltree"
	"github.com/samber/lo"
)

// Dialect is XML vocabulary of a supplier feed. It is stored on the supplier record.
type Dialect string

const (
	// DialectStandard is lowercase <products><product> feed with flat fields.
	DialectStandard Dialect = "standard"
	// DialectTiered is <Catalog><Products><Product> feed with Category1..Category3 levels.
	DialectTiered Dialect = "tiered"
	// DialectCatalog is CDATA-heavy <catalog><product sku=""> feed with category lists and attributes.
	DialectCatalog Dialect = "catalog"
	// DialectGoogle is Google Merchant RSS feed.
	DialectGoogle Dialect = "google"
)

// Parser parses feed documents of one dialect.
type Parser interface {
	Parse(ctx context.Context, supplier string, r io.Reader) ([]models.FeedRecord, error)
}

var parsers = map[Dialect]Parser{
	DialectStandard: standardParser,
	DialectTiered:   tieredParser,
	DialectCatalog:  catalogParser,
	DialectGoogle:   GoogleParser{},
}

// ParseDialect returns dialect with provided name or ErrUnknownDialect.
func ParseDialect(name string) (Dialect, error) {
	dialect := Dialect(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := parsers[dialect]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return dialect, nil
}

// ForDialect returns parser of provided dialect.
func ForDialect(dialect Dialect) (Parser, error) {
	parser, ok := parsers[dialect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	return parser, nil
}

// Dialects returns names of all supported dialects.
func Dialects() []string {
	names := lo.Map(lo.Keys(parsers), func(d Dialect, _ int) string { return string(d) })
	sort.Strings(names)
	return names
}

// treeParser parses feeds decoded into xmltree and located by xmltree.FindProductArray.
type treeParser struct {
	dialect     Dialect
	path        string
	alwaysArray []string
	mapProduct  func(product any) models.FeedRecord
}

// Parse decodes feed document and maps every product into feed record.
func (p treeParser) Parse(ctx context.Context, supplier string, r io.Reader) ([]models.FeedRecord, error) {
	doc, err := xmltree.Decode(r, xmltree.WithAlwaysArray(p.alwaysArray...))
	if err != nil {
		return nil, fmt.Errorf("can't decode %s feed: %w", p.dialect, err)
	}

	products := xmltree.FindProductArray(doc)
	if len(products) == 0 {
		return nil, &platform.FeedFormatError{Supplier: supplier, Path: p.path}
	}

	records := make([]models.FeedRecord, 0, len(products))
	for ix, product := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record := p.mapProduct(product)
		finishRecord(&record, ix)
		records = append(records, record)
	}

	return records, nil
}
