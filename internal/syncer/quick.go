package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"golang.org/x/sync/errgroup"
)

// QuickSync replays supplier's last confirmed category selection without operator interaction.
func (s *Syncer) QuickSync(ctx context.Context, supplierID string) (*models.Run, error) {
	return s.quickSync(ctx, supplierID, s.fetchTimeout)
}

// QuickSyncAll quick syncs suppliers concurrently. One supplier's failure doesn't stop others.
// Returned map contains error for every failed supplier.
func (s *Syncer) QuickSyncAll(ctx context.Context, supplierIDs []string) map[string]error {
	var (
		mu       sync.Mutex
		failures = make(map[string]error)
	)

	var eg errgroup.Group
	eg.SetLimit(s.concurrency)

	for _, supplierID := range supplierIDs {
		eg.Go(func() error {
			if _, err := s.quickSync(ctx, supplierID, s.batchFetchTimeout); err != nil {
				mu.Lock()
				failures[supplierID] = err
				mu.Unlock()
			}
			return nil
		})
	}

	_ = eg.Wait()
	return failures
}

func (s *Syncer) quickSync(ctx context.Context, supplierID string, fetchTimeout time.Duration) (*models.Run, error) {
	selection, err := s.selections.Load(ctx, supplierID)
	if err != nil {
		return nil, supplierError(supplierID, fmt.Errorf("can't load category selection: %w", err))
	}

	supplier, err := s.storage.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, supplierError(supplierID, fmt.Errorf("can't get supplier: %w", err))
	}

	started := time.Now()
	run, err := s.startRun(ctx, supplierID, models.SyncModeQuick)
	if err != nil {
		return nil, supplierError(supplierID, err)
	}

	err = s.syncSelection(ctx, run, supplier, selection, fetchTimeout)
	err = s.finishRun(ctx, run, started, err)

	s.logRun(run, err)
	return run, supplierError(supplierID, err)
}

func (s *Syncer) syncSelection(
	ctx context.Context,
	run *models.Run,
	supplier *models.Supplier,
	selection models.Selection,
	fetchTimeout time.Duration,
) error {
	records, err := s.fetchRecords(ctx, supplier.URL, supplier.Name, supplier.Dialect, fetchTimeout)
	if err != nil {
		return err
	}

	mapped, _, err := s.mapRecords(ctx, records)
	if err != nil {
		return err
	}

	return s.upsert(ctx, run, supplier, mapped, selection)
}
