package mapper_test

import (
	"testing"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/mapper"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Office > Desks [Desks, Writing desks]
// Office > Desks > Standing [Furniture]
// Home [Furniture]
func snapshot(t *testing.T) *categorytree.Snapshot {
	t.Helper()

	snap, err := categorytree.NewSnapshot([]models.StoreCategory{
		{ID: "office", Name: "Office", Order: 0},
		{ID: "desks", Name: "Desks", ParentID: lo.ToPtr("office"), Order: 0, RawCategories: []string{"Desks", "Writing desks"}},
		{ID: "standing", Name: "Standing", ParentID: lo.ToPtr("desks"), Order: 0, RawCategories: []string{"Furniture"}},
		{ID: "home", Name: "Home", Order: 1, RawCategories: []string{"Furniture"}},
	})
	require.NoError(t, err)

	return snap
}

func TestUnitMap(t *testing.T) {
	snap := snapshot(t)

	tests := map[string]struct {
		raw  string
		want models.CategoryMapping
	}{
		"empty": {
			raw:  "   ",
			want: models.CategoryMapping{RawCategory: "", Category: "Uncategorized"},
		},
		"unmatched": {
			raw:  " Garden > Chairs ",
			want: models.CategoryMapping{RawCategory: "Garden > Chairs", Category: "Uncategorized"},
		},
		"matched": {
			raw:  "writing DESKS",
			want: models.CategoryMapping{RawCategory: "writing DESKS", Category: "Office > Desks", CategoryID: lo.ToPtr("desks")},
		},
		"matched by two categories resolves in pre-order": {
			raw:  "Furniture",
			want: models.CategoryMapping{RawCategory: "Furniture", Category: "Office > Desks > Standing", CategoryID: lo.ToPtr("standing")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := mapper.Map(tt.raw, snap)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitMapGreekCase(t *testing.T) {
	tree, err := categorytree.New([]models.StoreCategory{{ID: "chairs", Name: "Καρέκλες"}})
	require.NoError(t, err)

	require.NoError(t, tree.Assign("chairs", "Γραφεία > Καρέκλες"))
	require.NoError(t, tree.Assign("chairs", "ΓΡΑΦΕΊΑ > ΚΑΡΈΚΛΕΣ"))
	flat := tree.Flat()
	require.Equal(t, []string{"Γραφεία > Καρέκλες"}, flat[0].RawCategories, "should treat upper case as already assigned")

	got := mapper.Map("ΓΡΑΦΕΊΑ > ΚΑΡΈΚΛΕΣ", tree.Snapshot())

	assert.Equal(t, models.CategoryMapping{
		RawCategory: "ΓΡΑΦΕΊΑ > ΚΑΡΈΚΛΕΣ",
		Category:    "Καρέκλες",
		CategoryID:  lo.ToPtr("chairs"),
	}, got, "should map every casing the tree treats as assigned")
}

func TestUnitMapWithoutSnapshot(t *testing.T) {
	got := mapper.Map("Desks", nil)

	assert.Equal(t, models.CategoryMapping{RawCategory: "Desks", Category: "Uncategorized"}, got,
		"should fall back to uncategorized without category tree",
	)
}

func TestUnitMapUnknownCategoriesFallBack(t *testing.T) {
	snap := snapshot(t)

	for i := 0; i < 20; i++ {
		raw := faker.Sentence()

		got := mapper.Map(raw, snap)

		assert.Equal(t, models.UncategorizedCategory, got.Category, "should map %q to uncategorized", raw)
		assert.Nil(t, got.CategoryID)
	}
}

func TestUnitMapBatch(t *testing.T) {
	snap := snapshot(t)
	records := []models.FeedRecord{
		{ID: "1", Name: "Oak desk", RawCategory: "Desks"},
		{ID: "2", Name: "Lamp", RawCategory: "Lamps"},
		{ID: "3", Name: "Pine desk", RawCategory: "Desks"},
		{ID: "4", Name: "Box", RawCategory: ""},
	}

	got := mapper.MapBatch(records, snap)

	assert.Equal(t, []models.MappedRecord{
		{FeedRecord: records[0], Category: "Office > Desks", CategoryID: lo.ToPtr("desks")},
		{FeedRecord: records[1], Category: "Uncategorized"},
		{FeedRecord: records[2], Category: "Office > Desks", CategoryID: lo.ToPtr("desks")},
		{FeedRecord: records[3], Category: "Uncategorized"},
	}, got)
}

func TestUnitCategories(t *testing.T) {
	mapped := []models.MappedRecord{
		{FeedRecord: models.FeedRecord{ID: "1", RawCategory: "Desks"}, Category: "Office > Desks", CategoryID: lo.ToPtr("desks")},
		{FeedRecord: models.FeedRecord{ID: "2", RawCategory: "Lamps"}, Category: "Uncategorized"},
		{FeedRecord: models.FeedRecord{ID: "3", RawCategory: "Desks"}, Category: "Office > Desks", CategoryID: lo.ToPtr("desks")},
	}

	got := mapper.Categories(mapped)

	assert.Equal(t, []models.CategoryCount{
		{RawCategory: "Desks", Category: "Office > Desks", CategoryID: lo.ToPtr("desks"), Products: 2},
		{RawCategory: "Lamps", Category: "Uncategorized", Products: 1},
	}, got)
}
