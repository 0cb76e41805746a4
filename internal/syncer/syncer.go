// Package syncer runs supplier feed syncs: fetches and parses feeds, maps categories,
// prices selected products and upserts them into the catalog.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/feed"
	"github.com/MichalMitros/supplier-feed-sync/internal/mapper"
	"github.com/MichalMitros/supplier-feed-sync/internal/markup"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	defaultFetchTimeout      = 60 * time.Second
	defaultBatchFetchTimeout = 300 * time.Second
	defaultConcurrency       = 4
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name TreeSource --filename tree_source.go
//go:generate mockery --name SelectionStore --filename selection_store.go

// Fetcher fetches feed file.
type Fetcher interface {
	FetchFile(context.Context, string) (io.ReadCloser, error)
}

// Storage is suppliers, runs and products storage.
type Storage interface {
	// GetSupplier returns supplier with provided id or platform.ErrSupplierNotFound.
	GetSupplier(ctx context.Context, supplierID string) (*models.Supplier, error)
	// StartRun creates new run if there is no run for provided supplier running.
	StartRun(ctx context.Context, supplierID string, mode models.SyncMode) (*models.Run, error)
	// FinishRun finishes provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.Run) error
	// UpsertProducts creates new products and merges sync-owned fields of existing ones.
	// Returns number of created and updated products.
	UpsertProducts(ctx context.Context, products []models.PricedProduct) (created int32, updated int32, err error)
}

// TreeSource provides snapshots of the store category tree.
type TreeSource interface {
	Snapshot(ctx context.Context) (*categorytree.Snapshot, error)
}

// SelectionStore keeps the last confirmed category selection of suppliers.
type SelectionStore interface {
	Save(ctx context.Context, supplierID string, selection models.Selection) error
	// Load returns saved selection or platform.ErrNoSelection.
	Load(ctx context.Context, supplierID string) (models.Selection, error)
}

// Metrics records sync statistics.
type Metrics interface {
	RunFinished(mode models.SyncMode, success bool, duration time.Duration)
	ProductsSynced(mode models.SyncMode, created, updated, skipped int32)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer syncs supplier feeds into the catalog.
type Syncer struct {
	fetcher           Fetcher
	storage           Storage
	tree              TreeSource
	selections        SelectionStore
	metrics           Metrics
	clock             Clock
	logger            zerolog.Logger
	fetchTimeout      time.Duration
	batchFetchTimeout time.Duration
	concurrency       int
}

// NewSyncer returns new Syncer.
func NewSyncer(
	fetcher Fetcher,
	storage Storage,
	tree TreeSource,
	selections SelectionStore,
	ops ...Option,
) *Syncer {
	s := &Syncer{
		fetcher:           fetcher,
		storage:           storage,
		tree:              tree,
		selections:        selections,
		metrics:           noopMetrics{},
		clock:             systemClock{},
		logger:            zerolog.Nop(),
		fetchTimeout:      defaultFetchTimeout,
		batchFetchTimeout: defaultBatchFetchTimeout,
		concurrency:       defaultConcurrency,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}

// WithLogger sets Syncer's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Syncer) {
		s.logger = logger.With().Str("component", "syncer").Logger()
	}
}

// WithMetrics sets Syncer's metrics recorder.
func WithMetrics(m Metrics) Option {
	return func(s *Syncer) {
		s.metrics = m
	}
}

// WithFetchTimeout sets timeout of fetching single feed.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Syncer) {
		s.fetchTimeout = timeout
	}
}

// WithBatchFetchTimeout sets timeout of fetching feed in QuickSyncAll.
func WithBatchFetchTimeout(timeout time.Duration) Option {
	return func(s *Syncer) {
		s.batchFetchTimeout = timeout
	}
}

// WithConcurrency sets number of suppliers synced at once by QuickSyncAll.
func WithConcurrency(n int) Option {
	return func(s *Syncer) {
		s.concurrency = max(n, 1)
	}
}

// fetchRecords fetches and parses supplier feed. Fetching is bounded by timeout, parsing is not.
func (s *Syncer) fetchRecords(
	ctx context.Context,
	url string,
	supplierName string,
	dialectName string,
	timeout time.Duration,
) ([]models.FeedRecord, error) {
	dialect, err := feed.ParseDialect(dialectName)
	if err != nil {
		return nil, err
	}
	parser, err := feed.ForDialect(dialect)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	xmlFile, err := s.fetcher.FetchFile(fetchCtx, url)
	if err != nil {
		return nil, fmt.Errorf("can't fetch feed file: %w", err)
	}
	defer xmlFile.Close()

	records, err := parser.Parse(ctx, supplierName, xmlFile)
	if err != nil {
		return nil, fmt.Errorf("can't parse feed file: %w", err)
	}

	return records, nil
}

// mapRecords maps records using a single category tree snapshot.
func (s *Syncer) mapRecords(ctx context.Context, records []models.FeedRecord) ([]models.MappedRecord, uint64, error) {
	snapshot, err := s.tree.Snapshot(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("can't load category tree: %w", err)
	}
	return mapper.MapBatch(records, snapshot), snapshot.Version(), nil
}

// priceSelected prices records included in selection, deduplicated by product key.
func priceSelected(
	records []models.MappedRecord,
	selection models.Selection,
	supplier *models.Supplier,
) []models.PricedProduct {
	selected := lo.Filter(records, func(record models.MappedRecord, _ int) bool {
		return selection.Includes(record.RawCategory)
	})

	priced := lo.Map(selected, func(record models.MappedRecord, _ int) models.PricedProduct {
		return models.PricedProduct{
			MappedRecord: record,
			Price:        markup.Price(record.FeedRecord, supplier),
			SupplierID:   supplier.ID,
		}
	})

	return lo.UniqBy(priced, func(product models.PricedProduct) string {
		return product.Key()
	})
}

// startRun starts supplier's run, refusing concurrent runs of the same supplier.
func (s *Syncer) startRun(ctx context.Context, supplierID string, mode models.SyncMode) (*models.Run, error) {
	run, err := s.storage.StartRun(ctx, supplierID, mode)
	if err != nil {
		return nil, fmt.Errorf("can't start sync: %w", err)
	}
	run.Mode = mode
	return run, nil
}

// upsert stores priced products of selected records within run.
func (s *Syncer) upsert(
	ctx context.Context,
	run *models.Run,
	supplier *models.Supplier,
	records []models.MappedRecord,
	selection models.Selection,
) error {
	products := priceSelected(records, selection, supplier)
	run.SkippedProducts = lo.ToPtr(int32(len(records) - len(products)))

	created, updated, err := s.storage.UpsertProducts(ctx, products)
	run.CreatedProducts = &created
	run.UpdatedProducts = &updated
	if err != nil {
		return &platform.PersistenceError{Op: "upsert products", Err: err}
	}

	s.metrics.ProductsSynced(run.Mode, created, updated, *run.SkippedProducts)
	return nil
}

func (s *Syncer) finishRun(ctx context.Context, run *models.Run, started time.Time, status error) error {
	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = s.clock.Now()

	s.metrics.RunFinished(run.Mode, status == nil, time.Since(started))

	err := s.storage.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish sync: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed sync: %w (fail reason: %w)", err, status)
	}

	return status
}

func supplierError(supplierID string, err error) error {
	if err == nil {
		return nil
	}
	var scoped *platform.SupplierError
	if errors.As(err, &scoped) {
		return err
	}
	return &platform.SupplierError{SupplierID: supplierID, Err: err}
}

type noopMetrics struct{}

func (noopMetrics) RunFinished(models.SyncMode, bool, time.Duration) {}

func (noopMetrics) ProductsSynced(models.SyncMode, int32, int32, int32) {}
