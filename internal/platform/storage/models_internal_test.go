package storage

import (
	"math"
	"testing"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models/modelstesting"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgmodels "github.com/MichalMitros/supplier-feed-sync/internal/platform/storage/gen/postgres/public/model"
)

func TestUnitCategoryConversion(t *testing.T) {
	tests := map[string]struct {
		rawCategories []string
		want          []string
	}{
		"nil list": {
			rawCategories: nil,
			want:          []string{},
		},
		"newline inside element": {
			rawCategories: []string{"Office\nFurniture", "Chairs"},
			want:          []string{"Office\nFurniture", "Chairs"},
		},
		"separators and quotes": {
			rawCategories: []string{"Home > \"Lamps\"", "a,b", ""},
			want:          []string{"Home > \"Lamps\"", "a,b", ""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			category := models.StoreCategory{ID: "office", Name: "Office", ParentID: lo.ToPtr("root"), Order: 2, RawCategories: tt.rawCategories}

			dbCategory, err := ToDBCategory(&category)
			require.NoError(t, err, "shouldn't return any error")

			got, err := fromDBCategory(dbCategory)
			require.NoError(t, err, "shouldn't return any error")

			category.RawCategories = tt.want
			assert.Equal(t, category, got, "should keep every raw category intact")
		})
	}
}

func TestUnitFromDBCategoryMalformed(t *testing.T) {
	_, err := fromDBCategory(&pgmodels.Category{ID: "office", RawCategories: "Office\nChairs"})
	assert.Error(t, err, "should reject raw categories which are not a JSON array")
}

func TestUnitToDBProduct(t *testing.T) {
	tests := map[string]struct {
		stock      int
		images     []string
		wantStock  int32
		wantImages string
	}{
		"regular": {
			stock:      5,
			images:     []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b\n.jpg"},
			wantStock:  5,
			wantImages: `["https://cdn.example.com/a.jpg","https://cdn.example.com/b\n.jpg"]`,
		},
		"stock above int32": {
			stock:      3000000000,
			images:     nil,
			wantStock:  math.MaxInt32,
			wantImages: `[]`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			product := modelstesting.FakePricedProduct(func(p *models.PricedProduct) {
				p.Stock = tt.stock
				p.Images = tt.images
			})

			got, err := ToDBProduct(&product)
			require.NoError(t, err, "shouldn't return any error")

			assert.Equal(t, tt.wantStock, got.Stock, "should store stock within column range")
			assert.JSONEq(t, tt.wantImages, got.Images, "should store images as JSON array")
		})
	}
}
