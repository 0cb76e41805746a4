package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models/modelstesting"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage"
	pgmodels "github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/storagetesting"
	"github.com/go-faker/faker/v4"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var loc = func() *time.Location {
	loc, err := time.LoadLocation("Etc/UTC")
	if err != nil {
		panic(err)
	}
	return loc
}()

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationCreateSupplier() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)
	supplier := modelstesting.FakeSupplier()

	created, err := post.CreateSupplier(context.TODO(), &supplier)
	s.Require().NoError(err, "shouldn't return any error")
	s.NotZero(created.CreatedAt, "should set creation time")

	got, err := post.GetSupplier(context.TODO(), supplier.ID)
	s.Require().NoError(err, "shouldn't return any error")
	got.CreatedAt = supplier.CreatedAt
	s.Equal(&supplier, got, "should store all supplier fields")

	_, err = post.CreateSupplier(context.TODO(), &supplier)
	s.Require().ErrorIs(err, platform.ErrSupplierExists, "should refuse duplicated supplier")

	withoutID := modelstesting.FakeSupplier(func(s *models.Supplier) { s.ID = "" })
	created, err = post.CreateSupplier(context.TODO(), &withoutID)
	s.Require().NoError(err, "shouldn't return any error")
	s.NotEmpty(created.ID, "should generate supplier id")

	suppliers, err := post.ListSuppliers(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(suppliers, 2)
}

func (s *PostgresTestSuite) TestIntegrationGetSupplierNotFound() {
	post := storage.NewPostgres(s.DB)

	_, err := post.GetSupplier(context.TODO(), faker.UUIDHyphenated())

	s.Require().ErrorIs(err, platform.ErrSupplierNotFound)
}

func (s *PostgresTestSuite) TestIntegrationStartRun() {
	storagetesting.CleanupData(s.T(), s.DB)
	supplierID := faker.UUIDHyphenated()
	recently := time.Now().Add(-time.Minute)

	tests := map[string]struct {
		storedRuns []pgmodels.Run
		supplierID string
		wantErr    error
		wantRuns   int
	}{
		"first run": {
			supplierID: supplierID,
			wantRuns:   1,
		},
		"after successful run": {
			supplierID: supplierID,
			storedRuns: []pgmodels.Run{
				{ID: 1000, SupplierID: supplierID, Mode: "full", CreatedAt: recently, Success: lo.ToPtr(true), FinishedAt: &recently},
			},
			wantRuns: 2,
		},
		"after failed run": {
			supplierID: supplierID,
			storedRuns: []pgmodels.Run{
				{ID: 1000, SupplierID: supplierID, Mode: "quick", CreatedAt: recently, Success: lo.ToPtr(false), FinishedAt: &recently},
			},
			wantRuns: 2,
		},
		"after abandoned run": {
			supplierID: supplierID,
			storedRuns: []pgmodels.Run{
				{ID: 1000, SupplierID: supplierID, Mode: "quick", CreatedAt: time.Now().Add(-2 * time.Hour)},
			},
			wantRuns: 2,
		},
		"already running error": {
			supplierID: supplierID,
			storedRuns: []pgmodels.Run{
				{ID: 1000, SupplierID: supplierID, Mode: "full", CreatedAt: recently},
			},
			wantErr:  platform.ErrAlreadyRunning,
			wantRuns: 1,
		},
		"not existing supplier error": {
			supplierID: faker.UUIDHyphenated(),
			wantErr:    platform.ErrSupplierNotFound,
		},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			defer storagetesting.CleanupData(s.T(), s.DB)

			storagetesting.InsertSuppliers(s.T(), s.DB, fakeDBSupplier(supplierID))
			storagetesting.InsertRuns(s.T(), s.DB, tt.storedRuns...)

			post := storage.NewPostgres(s.DB)

			run, err := post.StartRun(context.TODO(), tt.supplierID, models.SyncModeQuick)

			if tt.wantErr != nil {
				s.Require().ErrorIs(err, tt.wantErr, "should return correct error")
			} else {
				s.Require().NoError(err, "shouldn't return any error")
				s.NotZero(run.ID, "run should have id")
				s.NotZero(run.CreatedAt, "run should have \"created at\" set")
				s.Equal(supplierID, run.SupplierID)
				s.Equal(models.SyncModeQuick, run.Mode)
				s.Nil(run.FinishedAt, "run shouldn't be finished")
			}

			runs := storagetesting.GetRuns(s.T(), s.DB, supplierID)
			s.Len(runs, tt.wantRuns, "should have correct number of runs")
			for _, stored := range runs[:max(len(runs)-1, 0)] {
				s.NotNil(stored.FinishedAt, "previous runs should be finished")
			}
		})
	}
}

func (s *PostgresTestSuite) TestIntegrationFinishRun() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	supplierID := faker.UUIDHyphenated()
	createdAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)
	finishedAt := time.Date(2024, time.April, 1, 2, 1, 1, 0, loc)

	storagetesting.InsertSuppliers(s.T(), s.DB, fakeDBSupplier(supplierID))
	storagetesting.InsertRuns(s.T(), s.DB, pgmodels.Run{ID: 1, SupplierID: supplierID, Mode: "full", CreatedAt: createdAt})

	post := storage.NewPostgres(s.DB)

	err := post.FinishRun(context.TODO(), &models.Run{
		ID:              1,
		SupplierID:      supplierID,
		Mode:            models.SyncModeFull,
		CreatedAt:       createdAt,
		FinishedAt:      &finishedAt,
		IsSuccess:       lo.ToPtr(false),
		StatusMessage:   lo.ToPtr("can't fetch feed file"),
		CreatedProducts: lo.ToPtr(int32(3)),
		UpdatedProducts: lo.ToPtr(int32(2)),
		SkippedProducts: lo.ToPtr(int32(1)),
	})
	s.Require().NoError(err, "shouldn't return any error")

	run := storagetesting.GetRun(s.T(), s.DB, 1)
	s.Equal(lo.ToPtr(false), run.Success)
	s.Equal(lo.ToPtr("can't fetch feed file"), run.StatusMessage)
	s.Equal(lo.ToPtr(int32(3)), run.CreatedProducts)
	s.Equal(lo.ToPtr(int32(2)), run.UpdatedProducts)
	s.Equal(lo.ToPtr(int32(1)), run.SkippedProducts)
	s.Require().NotNil(run.FinishedAt)
	s.True(finishedAt.Equal(*run.FinishedAt), "should store finish time")

	err = post.FinishRun(context.TODO(), &models.Run{ID: 2})
	s.Require().Error(err, "should return error for not existing run")
}

func (s *PostgresTestSuite) TestIntegrationUpsertProducts() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	supplierID := faker.UUIDHyphenated()
	createdAt := time.Date(2024, time.April, 1, 1, 1, 1, 0, loc)

	storagetesting.InsertSuppliers(s.T(), s.DB, fakeDBSupplier(supplierID))
	storagetesting.InsertProducts(s.T(), s.DB, pgmodels.Product{
		Key:        models.ProductKey(supplierID, "1"),
		SupplierID: supplierID,
		RecordID:   "1",
		Name:       "old name",
		Category:   models.UncategorizedCategory,
		Images:     "[]",
		Attributes: "{}",
		Published:  true,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	})

	products := lo.Map([]string{"1", "2", "3"}, func(id string, _ int) models.PricedProduct {
		return modelstesting.FakePricedProduct(func(p *models.PricedProduct) {
			p.ID = id
			p.SupplierID = supplierID
			p.Price = decimal.RequireFromString("12.34")
			p.Attributes = map[string]string{"color": "red"}
		})
	})

	post := storage.NewPostgres(s.DB, storage.WithBatchSize(2))

	created, updated, err := post.UpsertProducts(context.TODO(), products)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int32(2), created, "should return correct number of created products")
	s.Equal(int32(1), updated, "should return correct number of updated products")

	stored := storagetesting.GetProducts(s.T(), s.DB, supplierID)
	s.Require().Len(stored, 3)
	for ix := range stored {
		want, err := storage.ToDBProduct(&products[ix])
		s.Require().NoError(err)
		assertProduct(s.T(), *want, stored[ix])
	}
	s.True(stored[0].Published, "sync shouldn't overwrite store-owned fields")
	s.True(createdAt.Equal(stored[0].CreatedAt), "sync shouldn't overwrite creation time")
	s.True(stored[0].UpdatedAt.After(createdAt), "should bump update time")
}

func (s *PostgresTestSuite) TestIntegrationCategories() {
	defer storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.CleanupData(s.T(), s.DB)

	storagetesting.InsertCategories(s.T(), s.DB, pgmodels.Category{ID: "removed", Name: "Removed", RawCategories: "[]", UpdatedAt: time.Now()})

	categories := []models.StoreCategory{
		{ID: "office", Name: "Office", RawCategories: []string{}},
		{ID: "desks", Name: "Desks", ParentID: lo.ToPtr("office"), RawCategories: []string{"Desks", "Furniture > Desks", "Office\nDesks"}},
		{ID: "home", Name: "Home", Order: 1, RawCategories: []string{"Lamps"}},
	}

	post := storage.NewPostgres(s.DB)

	s.Require().NoError(post.SaveCategories(context.TODO(), categories), "shouldn't return any error")

	loaded, err := post.LoadCategories(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.ElementsMatch(categories, loaded, "should replace whole tree")

	s.Require().NoError(post.SaveCategories(context.TODO(), nil), "shouldn't return any error")

	loaded, err = post.LoadCategories(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(loaded, "should delete all categories")
}

func fakeDBSupplier(id string) pgmodels.Supplier {
	return pgmodels.Supplier{
		ID:             id,
		Name:           faker.Word(),
		URL:            faker.URL(),
		Dialect:        "standard",
		MarkupRules:    "[]",
		ConversionRate: 1,
		CreatedAt:      time.Now(),
	}
}

// assertProduct is a helper test function to assert sync-owned product fields.
func assertProduct(t *testing.T, expected, actual pgmodels.Product) {
	t.Helper()

	require.Equal(t, expected.Key, actual.Key, "products should have the same key")
	assert.JSONEq(t, expected.Attributes, actual.Attributes, "product %s has incorrect attributes", actual.Key)
	assert.JSONEq(t, expected.Images, actual.Images, "product %s has incorrect images", actual.Key)

	actual.Attributes = expected.Attributes
	actual.Images = expected.Images
	actual.Published = expected.Published
	actual.CreatedAt = expected.CreatedAt
	actual.UpdatedAt = expected.UpdatedAt

	assert.Equal(t, expected, actual, "product %s has incorrect values", actual.Key)
}
