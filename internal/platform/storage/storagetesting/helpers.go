package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/table"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. Test is skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertSuppliers is a helper test function to insert suppliers.
func InsertSuppliers(t *testing.T, exc qrm.Executable, suppliers ...pgmodels.Supplier) {
	t.Helper()

	if len(suppliers) == 0 {
		return
	}

	_, err := table.Supplier.INSERT(table.Supplier.AllColumns).MODELS(suppliers).Exec(exc)
	if err != nil {
		t.Fatal("can't insert suppliers", err)
	}
}

// InsertRuns is a helper test function to insert runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.Run) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	_, err := table.Run.INSERT(table.Run.AllColumns).MODELS(runs).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(products).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Category) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.Category.INSERT(table.Category.AllColumns).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// GetRun is a helper test function to get run by id.
func GetRun(t *testing.T, queryable qrm.Queryable, runID int) pgmodels.Run {
	t.Helper()

	var run pgmodels.Run
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.ID.EQ(pg.Int32(int32(runID)))).
		Query(queryable, &run)
	if err != nil {
		t.Fatal("can't get run", err)
	}

	return run
}

// GetRuns is a helper test function to get runs of supplier ordered by id.
func GetRuns(t *testing.T, queryable qrm.Queryable, supplierID string) []pgmodels.Run {
	t.Helper()

	runs := []pgmodels.Run{}
	err := table.Run.SELECT(table.Run.AllColumns).
		WHERE(table.Run.SupplierID.EQ(pg.String(supplierID))).
		ORDER_BY(table.Run.ID.ASC()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetProducts is a helper test function to get products of supplier ordered by key.
func GetProducts(t *testing.T, queryable qrm.Queryable, supplierID string) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.SupplierID.EQ(pg.String(supplierID))).
		ORDER_BY(table.Product.Key.ASC()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Product.DELETE().WHERE(table.Product.Key.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.Run.DELETE().WHERE(table.Run.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}

	_, err = table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete categories data", err)
	}

	_, err = table.Supplier.DELETE().WHERE(table.Supplier.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete suppliers data", err)
	}
}
