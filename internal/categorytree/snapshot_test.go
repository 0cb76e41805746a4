package categorytree_test

import (
	"testing"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitSnapshotLookup(t *testing.T) {
	snapshot, err := categorytree.NewSnapshot(fixture())
	require.NoError(t, err)

	tests := map[string]struct {
		raw    string
		wantID string
		wantOK bool
	}{
		"exact":                  {raw: "Desks", wantID: "desks", wantOK: true},
		"case insensitive":       {raw: "fURNITURE > dESKS", wantID: "desks", wantOK: true},
		"surrounding whitespace": {raw: "  Lamps ", wantID: "home", wantOK: true},
		// Standing is deeper than Home but comes first in pre-order.
		"duplicate raw category resolves in pre-order": {raw: "Furniture", wantID: "standing", wantOK: true},
		"unknown": {raw: "Garden", wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := snapshot.Lookup(tt.raw)

			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestUnitSnapshotPath(t *testing.T) {
	snapshot, err := categorytree.NewSnapshot(fixture())
	require.NoError(t, err)

	tests := map[string]struct {
		id       string
		wantPath string
		wantOK   bool
	}{
		"root":    {id: "home", wantPath: "Home", wantOK: true},
		"nested":  {id: "standing", wantPath: "Office > Desks > Standing", wantOK: true},
		"missing": {id: "missing", wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := snapshot.Path(tt.id)

			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}

func TestUnitSnapshotIsImmutable(t *testing.T) {
	tree := newTree(t)
	snapshot := tree.Snapshot()

	require.NoError(t, tree.MoveRaw("Lamps", "office"))
	require.NoError(t, tree.Delete("home"))

	got, ok := snapshot.Lookup("Lamps")
	require.True(t, ok)
	assert.Equal(t, "home", got.ID, "should keep mapping from the time snapshot was taken")
	assert.Equal(t, uint64(0), snapshot.Version())
	assert.Equal(t, uint64(2), tree.Snapshot().Version())
}

func TestUnitNilSnapshotLookup(t *testing.T) {
	var snapshot *categorytree.Snapshot

	_, ok := snapshot.Lookup("Desks")

	assert.False(t, ok, "should not match anything without snapshot")
}
