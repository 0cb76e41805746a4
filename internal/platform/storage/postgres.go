package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const (
	defaultBatchSize     = 500
	defaultStaleRunAfter = time.Hour

	uniqueViolation = "23505"
)

// Option is custom configuration of Postgres.
type Option func(p *Postgres)

// WithBatchSize sets max number of products written by single statement.
func WithBatchSize(n int) Option {
	return func(p *Postgres) {
		p.batchSize = max(n, 1)
	}
}

// WithStaleRunAfter sets age after which unfinished run is considered abandoned
// and doesn't block starting new run.
func WithStaleRunAfter(d time.Duration) Option {
	return func(p *Postgres) {
		p.staleRunAfter = d
	}
}

// Postgres is storage for suppliers, categories, runs and products.
type Postgres struct {
	db            *sql.DB
	batchSize     int
	staleRunAfter time.Duration
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB, ops ...Option) Postgres {
	p := Postgres{
		db:            db,
		batchSize:     defaultBatchSize,
		staleRunAfter: defaultStaleRunAfter,
	}

	for _, op := range ops {
		op(&p)
	}

	return p
}

// CreateSupplier stores new supplier. Random id is assigned when supplier has none.
// It returns platform.ErrSupplierExists if supplier with the same id is already stored.
func (p Postgres) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	toCreate := *supplier
	if toCreate.ID == "" {
		toCreate.ID = uuid.NewString()
	}

	dbSupplier, err := ToDBSupplier(&toCreate)
	if err != nil {
		return nil, fmt.Errorf("can't convert supplier: %w", err)
	}

	var created pgmodels.Supplier
	err = table.Supplier.INSERT(table.Supplier.AllColumns.Except(table.Supplier.CreatedAt)).
		MODEL(dbSupplier).
		RETURNING(table.Supplier.AllColumns).
		QueryContext(ctx, p.db, &created)
	if isUniqueViolation(err) {
		return nil, platform.ErrSupplierExists
	}
	if err != nil {
		return nil, fmt.Errorf("can't insert supplier into database: %w", err)
	}

	return fromDBSupplier(&created)
}

// GetSupplier returns supplier with provided id or platform.ErrSupplierNotFound.
func (p Postgres) GetSupplier(ctx context.Context, supplierID string) (*models.Supplier, error) {
	supplier, err := getSupplier(ctx, p.db, supplierID, false)
	if err != nil {
		return nil, err
	}

	return fromDBSupplier(supplier)
}

// ListSuppliers returns all suppliers ordered by name.
func (p Postgres) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var dbSuppliers []pgmodels.Supplier
	err := table.Supplier.SELECT(table.Supplier.AllColumns).
		ORDER_BY(table.Supplier.Name.ASC(), table.Supplier.ID.ASC()).
		QueryContext(ctx, p.db, &dbSuppliers)
	if err != nil {
		return nil, fmt.Errorf("can't get suppliers from database: %w", err)
	}

	suppliers := make([]models.Supplier, 0, len(dbSuppliers))
	for ix := range dbSuppliers {
		supplier, err := fromDBSupplier(&dbSuppliers[ix])
		if err != nil {
			return nil, fmt.Errorf("can't convert supplier %s: %w", dbSuppliers[ix].ID, err)
		}
		suppliers = append(suppliers, *supplier)
	}

	return suppliers, nil
}

// StartRun creates new unfinished run in database and returns it.
// It returns ErrAlreadyRunning if previous run of the supplier is not finished yet.
func (p Postgres) StartRun(ctx context.Context, supplierID string, mode models.SyncMode) (*models.Run, error) {
	var run *models.Run

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		// supplier row lock serializes concurrent run starts
		if _, err := getSupplier(ctx, tx, supplierID, true); err != nil {
			return err
		}

		lastRun, err := getLastRun(ctx, tx, supplierID)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			if time.Since(lastRun.CreatedAt) < p.staleRunAfter {
				return platform.ErrAlreadyRunning
			}
			if err := abandonRun(ctx, tx, lastRun.ID); err != nil {
				return fmt.Errorf("can't abandon stale run: %w", err)
			}
		}

		newRun := pgmodels.Run{
			SupplierID: supplierID,
			Mode:       string(mode),
		}
		err = table.Run.INSERT(
			table.Run.SupplierID,
			table.Run.Mode,
		).
			MODEL(newRun).
			RETURNING(table.Run.AllColumns).
			QueryContext(ctx, tx, &newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run = FromDBRun(&newRun)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets run as finished and updates run's statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.Run) error {
	columnList := table.Run.AllColumns.Except(
		table.Run.ID,
		table.Run.SupplierID,
		table.Run.Mode,
		table.Run.CreatedAt,
	)

	result, err := table.Run.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.Run.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("can't update run: run %d not found", run.ID)
	}

	return nil
}

// UpsertProducts creates new products and overwrites sync-owned fields of existing ones
// in a single transaction. Products are keyed by their product key.
// It returns number of created and number of updated products.
func (p Postgres) UpsertProducts(ctx context.Context, products []models.PricedProduct) (int32, int32, error) {
	if len(products) == 0 {
		return 0, 0, nil
	}

	products = lo.UniqBy(products, func(product models.PricedProduct) string {
		return product.Key()
	})

	var created, updated int32

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		for _, batch := range lo.Chunk(products, p.batchSize) {
			dbProducts := make([]pgmodels.Product, 0, len(batch))
			for ix := range batch {
				dbProduct, err := ToDBProduct(&batch[ix])
				if err != nil {
					return fmt.Errorf("can't convert product %s: %w", batch[ix].Key(), err)
				}
				dbProducts = append(dbProducts, *dbProduct)
			}

			existing, err := getExistingProductKeys(ctx, tx, dbProducts)
			if err != nil {
				return fmt.Errorf("can't get existing products: %w", err)
			}

			if err := upsertProducts(ctx, tx, dbProducts); err != nil {
				return err
			}

			created += int32(len(dbProducts) - len(existing))
			updated += int32(len(existing))
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, updated, nil
}

// LoadCategories returns all stored categories.
func (p Postgres) LoadCategories(ctx context.Context) ([]models.StoreCategory, error) {
	var dbCategories []pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		ORDER_BY(table.Category.SortOrder.ASC(), table.Category.ID.ASC()).
		QueryContext(ctx, p.db, &dbCategories)
	if err != nil {
		return nil, fmt.Errorf("can't get categories from database: %w", err)
	}

	categories := make([]models.StoreCategory, 0, len(dbCategories))
	for ix := range dbCategories {
		category, err := fromDBCategory(&dbCategories[ix])
		if err != nil {
			return nil, fmt.Errorf("can't convert category %s: %w", dbCategories[ix].ID, err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// SaveCategories replaces stored category tree with provided categories in a single transaction.
// Categories missing from provided list are deleted.
func (p Postgres) SaveCategories(ctx context.Context, categories []models.StoreCategory) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		if err := deleteMissingCategories(ctx, tx, categories); err != nil {
			return fmt.Errorf("can't delete removed categories: %w", err)
		}

		if len(categories) == 0 {
			return nil
		}

		dbCategories := make([]pgmodels.Category, 0, len(categories))
		for ix := range categories {
			dbCategory, err := ToDBCategory(&categories[ix])
			if err != nil {
				return fmt.Errorf("can't convert category %s: %w", categories[ix].ID, err)
			}
			dbCategories = append(dbCategories, *dbCategory)
		}

		columnList := table.Category.AllColumns.Except(table.Category.UpdatedAt)
		updateList := table.Category.MutableColumns.Except(table.Category.UpdatedAt)

		_, err := table.Category.INSERT(columnList).
			MODELS(dbCategories).
			ON_CONFLICT(table.Category.ID).
			DO_UPDATE(
				pg.SET(
					updateList.SET(pg.ROW(excluded(table.Category.EXCLUDED.MutableColumns.Except(
						table.Category.EXCLUDED.UpdatedAt,
					))...)),
					table.Category.UpdatedAt.SET(pg.NOW()),
				),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't upsert categories into database: %w", err)
		}

		return nil
	})
}

func upsertProducts(ctx context.Context, db qrm.DB, products []pgmodels.Product) error {
	// published and created_at are owned by the store, not by syncs
	columnList := table.Product.AllColumns.Except(
		table.Product.Published,
		table.Product.CreatedAt,
		table.Product.UpdatedAt,
	)
	updateList := columnList.Except(table.Product.Key)

	_, err := table.Product.INSERT(columnList).
		MODELS(products).
		ON_CONFLICT(table.Product.Key).
		DO_UPDATE(
			pg.SET(
				updateList.SET(pg.ROW(excluded(table.Product.EXCLUDED.AllColumns.Except(
					table.Product.EXCLUDED.Key,
					table.Product.EXCLUDED.Published,
					table.Product.EXCLUDED.CreatedAt,
					table.Product.EXCLUDED.UpdatedAt,
				))...)),
				table.Product.UpdatedAt.SET(pg.NOW()),
			),
		).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't upsert products into database: %w", err)
	}

	return nil
}

func getExistingProductKeys(ctx context.Context, db qrm.DB, products []pgmodels.Product) ([]string, error) {
	keys := make([]pg.Expression, 0, len(products))
	for ix := range products {
		keys = append(keys, pg.String(products[ix].Key))
	}

	var existing []pgmodels.Product
	err := table.Product.SELECT(table.Product.Key).
		WHERE(table.Product.Key.IN(keys...)).
		QueryContext(ctx, db, &existing)
	if err != nil {
		return nil, err
	}

	return lo.Map(existing, func(product pgmodels.Product, _ int) string {
		return product.Key
	}), nil
}

func deleteMissingCategories(ctx context.Context, db qrm.DB, categories []models.StoreCategory) error {
	condition := table.Category.ID.IS_NOT_NULL()
	if len(categories) > 0 {
		ids := make([]pg.Expression, 0, len(categories))
		for ix := range categories {
			ids = append(ids, pg.String(categories[ix].ID))
		}
		condition = table.Category.ID.NOT_IN(ids...)
	}

	_, err := table.Category.DELETE().
		WHERE(condition).
		ExecContext(ctx, db)

	return err
}

func getSupplier(ctx context.Context, db qrm.DB, supplierID string, lock bool) (*pgmodels.Supplier, error) {
	stmt := table.Supplier.SELECT(table.Supplier.AllColumns).
		WHERE(table.Supplier.ID.EQ(pg.String(supplierID)))
	if lock {
		stmt = stmt.FOR(pg.UPDATE())
	}

	var supplier pgmodels.Supplier
	err := stmt.QueryContext(ctx, db, &supplier)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't get supplier from database: %w", err)
	}

	return &supplier, nil
}

func getLastRun(ctx context.Context, db qrm.DB, supplierID string) (*pgmodels.Run, error) {
	var run pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.SupplierID.EQ(pg.String(supplierID))).
		ORDER_BY(table.Run.CreatedAt.DESC(), table.Run.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, db, &run)
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func abandonRun(ctx context.Context, db qrm.DB, runID int32) error {
	_, err := table.Run.UPDATE().
		SET(
			table.Run.FinishedAt.SET(pg.NOW()),
			table.Run.Success.SET(pg.Bool(false)),
			table.Run.StatusMessage.SET(pg.String("run abandoned")),
		).
		WHERE(table.Run.ID.EQ(pg.Int32(runID))).
		ExecContext(ctx, db)

	return err
}

func excluded(columns pg.ColumnList) []pg.Expression {
	expressions := make([]pg.Expression, 0, len(columns))
	for _, col := range columns {
		expressions = append(expressions, col)
	}
	return expressions
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
