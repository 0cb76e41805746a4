package syncer

import (
	"context"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
)

// FeedRequest is request of stateless feed sync.
type FeedRequest struct {
	URL            string              `json:"url"`
	SupplierName   string              `json:"supplierName"`
	Dialect        string              `json:"dialect"`
	MarkupRules    []models.MarkupRule `json:"markupRules"`
	ConversionRate float64             `json:"conversionRate"`
}

// SyncFeed fetches, parses, maps and prices all products of a feed without writing anything.
func (s *Syncer) SyncFeed(ctx context.Context, req FeedRequest) ([]models.PricedProduct, error) {
	if strings.TrimSpace(req.URL) == "" || strings.TrimSpace(req.SupplierName) == "" ||
		strings.TrimSpace(req.Dialect) == "" {
		return nil, ErrMissingInput
	}

	records, err := s.fetchRecords(ctx, req.URL, req.SupplierName, req.Dialect, s.fetchTimeout)
	if err != nil {
		return nil, supplierError(req.SupplierName, err)
	}

	mapped, _, err := s.mapRecords(ctx, records)
	if err != nil {
		return nil, supplierError(req.SupplierName, err)
	}

	supplier := &models.Supplier{
		ID:             req.SupplierName,
		Name:           req.SupplierName,
		URL:            req.URL,
		Dialect:        req.Dialect,
		MarkupRules:    req.MarkupRules,
		ConversionRate: req.ConversionRate,
	}
	return priceSelected(mapped, models.Selection{All: true}, supplier), nil
}
