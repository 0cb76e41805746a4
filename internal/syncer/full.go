package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/mapper"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
)

// Preview is the first stage of full sync: parsed and mapped feed awaiting operator's category selection.
type Preview struct {
	Supplier    *models.Supplier       `json:"supplier"`
	Categories  []models.CategoryCount `json:"categories"`
	Records     []models.MappedRecord  `json:"-"`
	TreeVersion uint64                 `json:"treeVersion"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// Prepare fetches and parses supplier feed and maps all its products with one category tree snapshot.
// Returned preview lists categories found in the feed for operator selection. Nothing is written.
func (s *Syncer) Prepare(ctx context.Context, supplierID string) (*Preview, error) {
	logger := s.logger.With().Str("supplierId", supplierID).Logger()

	supplier, err := s.storage.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, supplierError(supplierID, fmt.Errorf("can't get supplier: %w", err))
	}

	records, err := s.fetchRecords(ctx, supplier.URL, supplier.Name, supplier.Dialect, s.fetchTimeout)
	if err != nil {
		logger.Error().Err(err).Msg("can't prepare sync")
		return nil, supplierError(supplierID, err)
	}

	mapped, treeVersion, err := s.mapRecords(ctx, records)
	if err != nil {
		return nil, supplierError(supplierID, err)
	}

	logger.Info().Int("products", len(mapped)).Uint64("treeVersion", treeVersion).Msg("sync prepared")

	return &Preview{
		Supplier:    supplier,
		Categories:  mapper.Categories(mapped),
		Records:     mapped,
		TreeVersion: treeVersion,
		CreatedAt:   *s.clock.Now(),
	}, nil
}

// Commit prices products of categories included in selection, upserts them all at once
// and saves selection as supplier's last selection for quick syncs.
func (s *Syncer) Commit(ctx context.Context, preview *Preview, selection models.Selection) (*models.Run, error) {
	if preview == nil || preview.Supplier == nil {
		return nil, ErrPreviewOutdated
	}
	supplierID := preview.Supplier.ID

	if selection.IsEmpty() {
		return nil, supplierError(supplierID, ErrEmptySelection)
	}

	started := time.Now()
	run, err := s.startRun(ctx, supplierID, models.SyncModeFull)
	if err != nil {
		return nil, supplierError(supplierID, err)
	}

	err = s.upsert(ctx, run, preview.Supplier, preview.Records, selection)
	if err == nil {
		if saveErr := s.selections.Save(ctx, supplierID, selection); saveErr != nil {
			err = &platform.PersistenceError{Op: "save category selection", Err: saveErr}
		}
	}
	err = s.finishRun(ctx, run, started, err)

	s.logRun(run, err)
	return run, supplierError(supplierID, err)
}

func (s *Syncer) logRun(run *models.Run, err error) {
	if run == nil {
		return
	}
	event := s.logger.Info()
	if err != nil {
		event = s.logger.Error().Err(err)
	}
	event.
		Str("supplierId", run.SupplierID).
		Str("mode", string(run.Mode)).
		Int("runId", run.ID).
		Interface("created", run.CreatedProducts).
		Interface("updated", run.UpdatedProducts).
		Interface("skipped", run.SkippedProducts).
		Msg("sync finished")
}
