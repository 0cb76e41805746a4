package categorytree_test

import (
	"testing"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture returns categories in storage order, not in tree order:
//
//	Office
//	├── Desks        [Desks, Furniture > Desks]
//	│   └── Standing [Furniture]
//	└── Chairs       [Chairs]
//	Home             [Furniture, Lamps]
func fixture() []models.StoreCategory {
	return []models.StoreCategory{
		{ID: "home", Name: "Home", Order: 1, RawCategories: []string{"Furniture", "Lamps"}},
		{ID: "chairs", Name: "Chairs", ParentID: lo.ToPtr("office"), Order: 1, RawCategories: []string{"Chairs"}},
		{ID: "office", Name: "Office", Order: 0, RawCategories: []string{}},
		{ID: "desks", Name: "Desks", ParentID: lo.ToPtr("office"), Order: 0, RawCategories: []string{"Desks", "Furniture > Desks"}},
		{ID: "standing", Name: "Standing", ParentID: lo.ToPtr("desks"), Order: 0, RawCategories: []string{"Furniture"}},
	}
}

func preOrder() []models.StoreCategory {
	return []models.StoreCategory{
		{ID: "office", Name: "Office", Order: 0, RawCategories: []string{}},
		{ID: "desks", Name: "Desks", ParentID: lo.ToPtr("office"), Order: 0, RawCategories: []string{"Desks", "Furniture > Desks"}},
		{ID: "standing", Name: "Standing", ParentID: lo.ToPtr("desks"), Order: 0, RawCategories: []string{"Furniture"}},
		{ID: "chairs", Name: "Chairs", ParentID: lo.ToPtr("office"), Order: 1, RawCategories: []string{"Chairs"}},
		{ID: "home", Name: "Home", Order: 1, RawCategories: []string{"Furniture", "Lamps"}},
	}
}

func newTree(t *testing.T, opts ...categorytree.Option) *categorytree.Tree {
	t.Helper()

	tree, err := categorytree.New(fixture(), opts...)
	require.NoError(t, err)

	return tree
}

func TestUnitNew(t *testing.T) {
	tree := newTree(t)

	assert.Equal(t, preOrder(), tree.Flat(), "should order categories in pre-order by sibling order")
	assert.Equal(t, uint64(0), tree.Version(), "should start at version 0")
}

func TestUnitNewErrors(t *testing.T) {
	tests := map[string]struct {
		flat    []models.StoreCategory
		wantErr error
	}{
		"duplicate id": {
			flat: []models.StoreCategory{
				{ID: "a", Name: "A"},
				{ID: "a", Name: "B"},
			},
			wantErr: categorytree.ErrDuplicateID,
		},
		"cycle": {
			flat: []models.StoreCategory{
				{ID: "a", Name: "A", ParentID: lo.ToPtr("b")},
				{ID: "b", Name: "B", ParentID: lo.ToPtr("a")},
			},
			wantErr: categorytree.ErrCycle,
		},
		"self parent": {
			flat: []models.StoreCategory{
				{ID: "a", Name: "A", ParentID: lo.ToPtr("a")},
			},
			wantErr: categorytree.ErrCycle,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree, err := categorytree.New(tt.flat)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tree)
		})
	}
}

func TestUnitNewDanglingParent(t *testing.T) {
	tree, err := categorytree.New([]models.StoreCategory{
		{ID: "a", Name: "A", ParentID: lo.ToPtr("missing"), RawCategories: []string{}},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.StoreCategory{
		{ID: "a", Name: "A", Order: 0, RawCategories: []string{}},
	}, tree.Flat(), "should treat category with unknown parent as root")
}

func TestUnitNestFlattenRoundTrip(t *testing.T) {
	nested, err := categorytree.Nest(fixture())
	require.NoError(t, err)

	wantNested := []categorytree.Node{
		{
			ID: "office", Name: "Office", RawCategories: []string{},
			Children: []categorytree.Node{
				{
					ID: "desks", Name: "Desks", RawCategories: []string{"Desks", "Furniture > Desks"},
					Children: []categorytree.Node{
						{ID: "standing", Name: "Standing", RawCategories: []string{"Furniture"}, Children: []categorytree.Node{}},
					},
				},
				{ID: "chairs", Name: "Chairs", RawCategories: []string{"Chairs"}, Children: []categorytree.Node{}},
			},
		},
		{ID: "home", Name: "Home", RawCategories: []string{"Furniture", "Lamps"}, Children: []categorytree.Node{}},
	}
	require.Equal(t, wantNested, nested, "should nest categories by parent and order")

	flat := categorytree.Flatten(nested)
	assert.Equal(t, preOrder(), flat, "should flatten into pre-order with recomputed order")

	renested, err := categorytree.Nest(flat)
	require.NoError(t, err)
	assert.Equal(t, nested, renested, "should reproduce original structure and ordering")
}

func TestUnitCreate(t *testing.T) {
	tree := newTree(t, categorytree.WithIDGenerator(func() string { return "new-id" }))

	created, err := tree.Create("  Storage ")

	require.NoError(t, err)
	assert.Equal(t, models.StoreCategory{
		ID:            "new-id",
		Name:          "Storage",
		Order:         2,
		RawCategories: []string{},
	}, created, "should append root category with next order")
	assert.Equal(t, uint64(1), tree.Version())

	_, err = tree.Create(" ")
	require.ErrorIs(t, err, categorytree.ErrEmptyName)
}

func TestUnitCreateGeneratesUUID(t *testing.T) {
	tree := newTree(t)

	first, err := tree.Create("A")
	require.NoError(t, err)
	second, err := tree.Create("B")
	require.NoError(t, err)

	assert.Len(t, first.ID, 36)
	assert.NotEqual(t, first.ID, second.ID, "should generate unique ids")
}

func TestUnitRename(t *testing.T) {
	tree := newTree(t)

	require.NoError(t, tree.Rename("desks", "Writing desks"))
	got, err := tree.Get("desks")
	require.NoError(t, err)
	assert.Equal(t, "Writing desks", got.Name)

	require.ErrorIs(t, tree.Rename("missing", "X"), categorytree.ErrCategoryNotFound)
	require.ErrorIs(t, tree.Rename("desks", ""), categorytree.ErrEmptyName)
}

func TestUnitDelete(t *testing.T) {
	tests := map[string]struct {
		id   string
		want []models.StoreCategory
	}{
		"inner category promotes children to its parent": {
			id: "desks",
			want: []models.StoreCategory{
				{ID: "office", Name: "Office", Order: 0, RawCategories: []string{}},
				{ID: "standing", Name: "Standing", ParentID: lo.ToPtr("office"), Order: 0, RawCategories: []string{"Furniture"}},
				{ID: "chairs", Name: "Chairs", ParentID: lo.ToPtr("office"), Order: 1, RawCategories: []string{"Chairs"}},
				{ID: "home", Name: "Home", Order: 1, RawCategories: []string{"Furniture", "Lamps"}},
			},
		},
		"root category promotes children to root level": {
			id: "office",
			want: []models.StoreCategory{
				{ID: "desks", Name: "Desks", Order: 0, RawCategories: []string{"Desks", "Furniture > Desks"}},
				{ID: "standing", Name: "Standing", ParentID: lo.ToPtr("desks"), Order: 0, RawCategories: []string{"Furniture"}},
				{ID: "chairs", Name: "Chairs", Order: 1, RawCategories: []string{"Chairs"}},
				{ID: "home", Name: "Home", Order: 2, RawCategories: []string{"Furniture", "Lamps"}},
			},
		},
		"leaf category": {
			id: "standing",
			want: []models.StoreCategory{
				{ID: "office", Name: "Office", Order: 0, RawCategories: []string{}},
				{ID: "desks", Name: "Desks", ParentID: lo.ToPtr("office"), Order: 0, RawCategories: []string{"Desks", "Furniture > Desks"}},
				{ID: "chairs", Name: "Chairs", ParentID: lo.ToPtr("office"), Order: 1, RawCategories: []string{"Chairs"}},
				{ID: "home", Name: "Home", Order: 1, RawCategories: []string{"Furniture", "Lamps"}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTree(t)

			require.NoError(t, tree.Delete(tt.id))

			assert.Equal(t, tt.want, tree.Flat())
			assert.Equal(t, uint64(1), tree.Version())
		})
	}

	t.Run("missing category", func(t *testing.T) {
		tree := newTree(t)
		require.ErrorIs(t, tree.Delete("missing"), categorytree.ErrCategoryNotFound)
		assert.Equal(t, uint64(0), tree.Version(), "shouldn't bump version on failed mutation")
	})
}

func TestUnitAssignUnassign(t *testing.T) {
	tree := newTree(t)

	require.NoError(t, tree.Assign("chairs", " Office chairs "))
	require.NoError(t, tree.Assign("chairs", "office CHAIRS"), "should ignore already assigned raw category")
	got, err := tree.Get("chairs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chairs", "Office chairs"}, got.RawCategories)

	require.NoError(t, tree.Unassign("chairs", "chairs"))
	got, err = tree.Get("chairs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Office chairs"}, got.RawCategories)

	require.ErrorIs(t, tree.Assign("chairs", "  "), categorytree.ErrEmptyRawCategory)
	require.ErrorIs(t, tree.Assign("missing", "X"), categorytree.ErrCategoryNotFound)
	require.ErrorIs(t, tree.Unassign("missing", "X"), categorytree.ErrCategoryNotFound)
}

func TestUnitAssignFullCaseFolding(t *testing.T) {
	tree := newTree(t)

	require.NoError(t, tree.Assign("chairs", "Γραφεία > Καρέκλες"))
	require.NoError(t, tree.Assign("chairs", "ΓΡΑΦΕΊΑ > ΚΑΡΈΚΛΕΣ"), "should ignore other casing of assigned raw category")
	got, err := tree.Get("chairs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chairs", "Γραφεία > Καρέκλες"}, got.RawCategories)

	snapshot := tree.Snapshot()
	for _, raw := range []string{"Γραφεία > Καρέκλες", "ΓΡΑΦΕΊΑ > ΚΑΡΈΚΛΕΣ", "γραφεία > καρέκλεσ"} {
		found, ok := snapshot.Lookup(raw)
		require.True(t, ok, "should find %q", raw)
		assert.Equal(t, "chairs", found.ID)
	}

	require.NoError(t, tree.MoveRaw("ΓΡΑΦΕΊΑ > ΚΑΡΈΚΛΕΣ", "home"))
	got, err = tree.Get("chairs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chairs"}, got.RawCategories, "should move every casing of raw category")

	require.NoError(t, tree.Unassign("home", "γραφεία > καρέκλες"))
	home, err := tree.Get("home")
	require.NoError(t, err)
	assert.Equal(t, []string{"Furniture", "Lamps"}, home.RawCategories, "should unassign other casing of raw category")
}

func TestUnitMoveRaw(t *testing.T) {
	tree := newTree(t)

	require.NoError(t, tree.MoveRaw("furniture", "chairs"))

	snapshot := tree.Snapshot()
	got, ok := snapshot.Lookup("Furniture")
	require.True(t, ok)
	assert.Equal(t, "chairs", got.ID, "should map raw category to target only")

	home, err := tree.Get("home")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lamps"}, home.RawCategories)
	standing, err := tree.Get("standing")
	require.NoError(t, err)
	assert.Equal(t, []string{}, standing.RawCategories)

	require.ErrorIs(t, tree.MoveRaw("Lamps", "missing"), categorytree.ErrCategoryNotFound)
}

func TestUnitRelocate(t *testing.T) {
	tests := map[string]struct {
		id       string
		parentID *string
		index    int
		want     []string
		parents  map[string]*string
	}{
		"subtree under another root": {
			id:       "desks",
			parentID: lo.ToPtr("home"),
			index:    0,
			want:     []string{"office", "chairs", "home", "desks", "standing"},
			parents:  map[string]*string{"desks": lo.ToPtr("home"), "standing": lo.ToPtr("desks")},
		},
		"to root level": {
			id:       "standing",
			parentID: nil,
			index:    0,
			want:     []string{"standing", "office", "desks", "chairs", "home"},
			parents:  map[string]*string{"standing": nil},
		},
		"within siblings": {
			id:       "chairs",
			parentID: lo.ToPtr("office"),
			index:    0,
			want:     []string{"office", "chairs", "desks", "standing", "home"},
			parents:  map[string]*string{"chairs": lo.ToPtr("office")},
		},
		"index past the end is clamped": {
			id:       "office",
			parentID: nil,
			index:    99,
			want:     []string{"home", "office", "desks", "standing", "chairs"},
			parents:  map[string]*string{"office": nil},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTree(t)

			require.NoError(t, tree.Relocate(tt.id, tt.parentID, tt.index))

			flat := tree.Flat()
			assert.Equal(t, tt.want, lo.Map(flat, func(c models.StoreCategory, _ int) string { return c.ID }))
			for id, parentID := range tt.parents {
				got, err := tree.Get(id)
				require.NoError(t, err)
				assert.Equal(t, parentID, got.ParentID, "should re-parent %s", id)
			}
		})
	}
}

func TestUnitRelocateErrors(t *testing.T) {
	tests := map[string]struct {
		id       string
		parentID *string
		wantErr  error
	}{
		"into itself":        {id: "desks", parentID: lo.ToPtr("desks"), wantErr: categorytree.ErrCycle},
		"into descendant":    {id: "office", parentID: lo.ToPtr("standing"), wantErr: categorytree.ErrCycle},
		"missing category":   {id: "missing", parentID: nil, wantErr: categorytree.ErrCategoryNotFound},
		"missing new parent": {id: "desks", parentID: lo.ToPtr("missing"), wantErr: categorytree.ErrCategoryNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTree(t)

			err := tree.Relocate(tt.id, tt.parentID, 0)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, preOrder(), tree.Flat(), "shouldn't change tree")
		})
	}
}

func TestUnitSubtree(t *testing.T) {
	tree := newTree(t)

	got, err := tree.Subtree("desks")

	require.NoError(t, err)
	assert.Equal(t, preOrder()[1:3], got)

	_, err = tree.Subtree("missing")
	require.ErrorIs(t, err, categorytree.ErrCategoryNotFound)
}
