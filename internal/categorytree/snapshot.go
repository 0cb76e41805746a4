package categorytree

import (
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"golang.org/x/text/cases"
)

// Snapshot is immutable view of the category tree at some version.
// One snapshot is meant to be used for the whole batch of category lookups.
type Snapshot struct {
	version    uint64
	categories []models.StoreCategory
	paths      map[string]string
	byRaw      map[string]int
}

// NewSnapshot builds snapshot from flat categories.
func NewSnapshot(flat []models.StoreCategory) (*Snapshot, error) {
	t, err := New(flat)
	if err != nil {
		return nil, err
	}
	return t.Snapshot(), nil
}

// newSnapshot expects categories in pre-order.
func newSnapshot(categories []models.StoreCategory, version uint64) *Snapshot {
	s := &Snapshot{
		version:    version,
		categories: categories,
		paths:      make(map[string]string, len(categories)),
		byRaw:      make(map[string]int),
	}

	for ix, category := range categories {
		path := category.Name
		if category.ParentID != nil {
			path = s.paths[*category.ParentID] + models.CategorySeparator + category.Name
		}
		s.paths[category.ID] = path

		for _, raw := range category.RawCategories {
			key := rawKey(raw)
			if _, taken := s.byRaw[key]; !taken {
				s.byRaw[key] = ix
			}
		}
	}

	return s
}

// Version returns version of the tree the snapshot was taken from.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Categories returns categories in pre-order.
func (s *Snapshot) Categories() []models.StoreCategory {
	return s.categories
}

// Path returns canonical root-to-leaf path of category.
func (s *Snapshot) Path(id string) (string, bool) {
	path, ok := s.paths[id]
	return path, ok
}

// Lookup returns the first category in pre-order which has raw category assigned, compared case-insensitively.
func (s *Snapshot) Lookup(raw string) (models.StoreCategory, bool) {
	if s == nil {
		return models.StoreCategory{}, false
	}
	ix, ok := s.byRaw[rawKey(raw)]
	if !ok {
		return models.StoreCategory{}, false
	}
	return s.categories[ix], true
}

// rawKey normalizes raw category for matching. Full case folding makes
// every casing of a raw category share one key, including final sigma.
func rawKey(raw string) string {
	return cases.Fold().String(strings.TrimSpace(raw))
}
