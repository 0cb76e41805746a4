// Package categorytree holds the curated store category tree.
//
// Categories are kept in a flat table indexed by id, hierarchy is represented only by parent links
// and ordered child lists, nested views are computed on demand.
package categorytree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Option configures Tree and Editor.
type Option func(o *options)

type options struct {
	newID func() string
}

func defaultOptions() options {
	return options{newID: uuid.NewString}
}

// WithIDGenerator sets generator of new category ids.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

type node struct {
	id            string
	name          string
	parentID      string
	rawCategories []string
	children      []string
}

// Tree is mutable category tree. It is not safe for concurrent use, Editor serialises access to it.
type Tree struct {
	nodes   map[string]*node
	roots   []string
	version uint64
	newID   func() string
}

// New builds tree from flat persisted categories.
// Siblings are ordered by Order, categories with unknown parent become roots.
func New(flat []models.StoreCategory, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree{
		nodes: make(map[string]*node, len(flat)),
		newID: o.newID,
	}

	for _, category := range flat {
		if _, exists := t.nodes[category.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, category.ID)
		}
		t.nodes[category.ID] = &node{
			id:            category.ID,
			name:          category.Name,
			parentID:      lo.FromPtr(category.ParentID),
			rawCategories: append([]string{}, category.RawCategories...),
		}
	}

	for _, n := range t.nodes {
		if _, ok := t.nodes[n.parentID]; !ok {
			n.parentID = ""
		}
	}

	if err := t.checkAcyclic(); err != nil {
		return nil, err
	}

	sorted := make([]models.StoreCategory, len(flat))
	copy(sorted, flat)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	for _, category := range sorted {
		n := t.nodes[category.ID]
		t.appendChild(n.parentID, n.id)
	}

	return t, nil
}

func (t *Tree) checkAcyclic() error {
	for id := range t.nodes {
		seen := map[string]struct{}{}
		for current := id; current != ""; current = t.nodes[current].parentID {
			if _, ok := seen[current]; ok {
				return fmt.Errorf("%w: category %q", ErrCycle, id)
			}
			seen[current] = struct{}{}
		}
	}
	return nil
}

// Version returns number of mutations applied to the tree.
func (t *Tree) Version() uint64 {
	return t.version
}

// Get returns category with provided id.
func (t *Tree) Get(id string) (models.StoreCategory, error) {
	n, err := t.node(id)
	if err != nil {
		return models.StoreCategory{}, err
	}
	return t.toStoreCategory(n, t.position(n)), nil
}

// Create appends new root category with generated id.
func (t *Tree) Create(name string) (models.StoreCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StoreCategory{}, ErrEmptyName
	}

	n := &node{id: t.newID(), name: name, rawCategories: []string{}}
	t.nodes[n.id] = n
	t.appendChild("", n.id)
	t.version++

	return t.toStoreCategory(n, len(t.roots)-1), nil
}

// Rename changes category display name.
func (t *Tree) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	n, err := t.node(id)
	if err != nil {
		return err
	}

	n.name = name
	t.version++
	return nil
}

// Delete removes category. Its children are promoted to the deleted category's parent
// and take its place among siblings.
func (t *Tree) Delete(id string) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}

	siblings := t.childrenOf(n.parentID)
	pos := lo.IndexOf(*siblings, id)
	for _, childID := range n.children {
		t.nodes[childID].parentID = n.parentID
	}
	promoted := append(append(append([]string{}, (*siblings)[:pos]...), n.children...), (*siblings)[pos+1:]...)
	*siblings = promoted

	delete(t.nodes, id)
	t.version++
	return nil
}

// Assign adds raw supplier category to category's mapping. Already assigned raw categories are ignored.
func (t *Tree) Assign(id, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyRawCategory
	}
	n, err := t.node(id)
	if err != nil {
		return err
	}

	if !containsFold(n.rawCategories, raw) {
		n.rawCategories = append(n.rawCategories, raw)
	}
	t.version++
	return nil
}

// Unassign removes raw supplier category from category's mapping.
func (t *Tree) Unassign(id, raw string) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	n.rawCategories = lo.Reject(n.rawCategories, func(assigned string, _ int) bool {
		return rawKey(assigned) == rawKey(raw)
	})
	t.version++
	return nil
}

// MoveRaw moves raw supplier category from every category that has it to target category.
func (t *Tree) MoveRaw(raw, toID string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyRawCategory
	}
	target, err := t.node(toID)
	if err != nil {
		return err
	}

	for _, n := range t.nodes {
		if n == target {
			continue
		}
		n.rawCategories = lo.Reject(n.rawCategories, func(assigned string, _ int) bool {
			return rawKey(assigned) == rawKey(raw)
		})
	}
	return t.Assign(target.id, raw)
}

// Relocate moves category together with its descendants under new parent at provided index.
// Nil parent moves category to the root level. Index is clamped to the siblings list.
func (t *Tree) Relocate(id string, parentID *string, index int) error {
	n, err := t.node(id)
	if err != nil {
		return err
	}

	newParent := lo.FromPtr(parentID)
	if newParent != "" {
		if _, err := t.node(newParent); err != nil {
			return err
		}
		if t.isDescendantOrSelf(newParent, id) {
			return fmt.Errorf("%w: can't move %q under %q", ErrCycle, id, newParent)
		}
	}

	old := t.childrenOf(n.parentID)
	*old = lo.Without(*old, id)

	siblings := t.childrenOf(newParent)
	index = max(0, min(index, len(*siblings)))
	*siblings = append((*siblings)[:index], append([]string{id}, (*siblings)[index:]...)...)
	n.parentID = newParent

	t.version++
	return nil
}

// Subtree returns category and all its descendants in pre-order.
func (t *Tree) Subtree(id string) ([]models.StoreCategory, error) {
	n, err := t.node(id)
	if err != nil {
		return nil, err
	}

	var flat []models.StoreCategory
	t.walk(n.id, t.position(n), func(n *node, order int) {
		flat = append(flat, t.toStoreCategory(n, order))
	})
	return flat, nil
}

// Flat returns all categories in pre-order with order recomputed per sibling group.
func (t *Tree) Flat() []models.StoreCategory {
	flat := make([]models.StoreCategory, 0, len(t.nodes))
	for order, id := range t.roots {
		t.walk(id, order, func(n *node, order int) {
			flat = append(flat, t.toStoreCategory(n, order))
		})
	}
	return flat
}

// Nested returns nested view of the tree.
func (t *Tree) Nested() []Node {
	nested, _ := Nest(t.Flat())
	return nested
}

// Snapshot returns immutable view of the current tree.
func (t *Tree) Snapshot() *Snapshot {
	return newSnapshot(t.Flat(), t.version)
}

func (t *Tree) walk(id string, order int, visit func(n *node, order int)) {
	n := t.nodes[id]
	visit(n, order)
	for childOrder, childID := range n.children {
		t.walk(childID, childOrder, visit)
	}
}

func (t *Tree) node(id string) (*node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, id)
	}
	return n, nil
}

func (t *Tree) childrenOf(parentID string) *[]string {
	if parentID == "" {
		return &t.roots
	}
	return &t.nodes[parentID].children
}

func (t *Tree) appendChild(parentID, id string) {
	siblings := t.childrenOf(parentID)
	*siblings = append(*siblings, id)
}

func (t *Tree) position(n *node) int {
	return lo.IndexOf(*t.childrenOf(n.parentID), n.id)
}

// isDescendantOrSelf reports whether id is ancestorID or one of its descendants.
func (t *Tree) isDescendantOrSelf(id, ancestorID string) bool {
	for current := id; current != ""; current = t.nodes[current].parentID {
		if current == ancestorID {
			return true
		}
	}
	return false
}

func (t *Tree) toStoreCategory(n *node, order int) models.StoreCategory {
	var parentID *string
	if n.parentID != "" {
		parentID = lo.ToPtr(n.parentID)
	}
	return models.StoreCategory{
		ID:            n.id,
		Name:          n.name,
		ParentID:      parentID,
		Order:         order,
		RawCategories: append([]string{}, n.rawCategories...),
	}
}

func containsFold(values []string, value string) bool {
	key := rawKey(value)
	return lo.ContainsBy(values, func(v string) bool { return rawKey(v) == key })
}
