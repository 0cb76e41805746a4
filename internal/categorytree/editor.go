package categorytree

import (
	"context"
	"sync"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
)

// Store persists the whole category tree.
//
//go:generate mockery --name Store --filename store.go
type Store interface {
	LoadCategories(ctx context.Context) ([]models.StoreCategory, error)
	SaveCategories(ctx context.Context, categories []models.StoreCategory) error
}

// Editor owns the category tree. Every mutation is saved as a full tree overwrite,
// the in-memory tree is not rolled back when saving fails.
type Editor struct {
	mu    sync.Mutex
	store Store
	opts  []Option
	tree  *Tree
}

// NewEditor creates editor of categories kept in store. The tree is loaded on first use.
func NewEditor(store Store, opts ...Option) *Editor {
	return &Editor{
		store: store,
		opts:  opts,
	}
}

// Snapshot returns immutable view of the current tree.
func (e *Editor) Snapshot(ctx context.Context) (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.load(ctx); err != nil {
		return nil, err
	}
	return e.tree.Snapshot(), nil
}

// Reload replaces in-memory tree with the stored one. It brings back the stored tree
// after a failed save and picks up categories changed by other processes.
func (e *Editor) Reload(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tree = nil
	return e.load(ctx)
}

// Nested returns nested view of the current tree.
func (e *Editor) Nested(ctx context.Context) ([]Node, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.load(ctx); err != nil {
		return nil, err
	}
	return e.tree.Nested(), nil
}

// Subtree returns category and all its descendants in pre-order.
func (e *Editor) Subtree(ctx context.Context, id string) ([]models.StoreCategory, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.load(ctx); err != nil {
		return nil, err
	}
	return e.tree.Subtree(id)
}

// Create appends new root category.
func (e *Editor) Create(ctx context.Context, name string) (models.StoreCategory, error) {
	var created models.StoreCategory
	err := e.mutate(ctx, func(t *Tree) error {
		var err error
		created, err = t.Create(name)
		return err
	})
	return created, err
}

// Rename changes category display name.
func (e *Editor) Rename(ctx context.Context, id, name string) error {
	return e.mutate(ctx, func(t *Tree) error { return t.Rename(id, name) })
}

// Delete removes category promoting its children to its parent.
func (e *Editor) Delete(ctx context.Context, id string) error {
	return e.mutate(ctx, func(t *Tree) error { return t.Delete(id) })
}

// Assign maps raw supplier category to category.
func (e *Editor) Assign(ctx context.Context, id, raw string) error {
	return e.mutate(ctx, func(t *Tree) error { return t.Assign(id, raw) })
}

// Unassign removes raw supplier category from category.
func (e *Editor) Unassign(ctx context.Context, id, raw string) error {
	return e.mutate(ctx, func(t *Tree) error { return t.Unassign(id, raw) })
}

// MoveRaw moves raw supplier category to target category.
func (e *Editor) MoveRaw(ctx context.Context, raw, toID string) error {
	return e.mutate(ctx, func(t *Tree) error { return t.MoveRaw(raw, toID) })
}

// Relocate moves category subtree under new parent.
func (e *Editor) Relocate(ctx context.Context, id string, parentID *string, index int) error {
	return e.mutate(ctx, func(t *Tree) error { return t.Relocate(id, parentID, index) })
}

func (e *Editor) mutate(ctx context.Context, fn func(t *Tree) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.load(ctx); err != nil {
		return err
	}
	if err := fn(e.tree); err != nil {
		return err
	}
	if err := e.store.SaveCategories(ctx, e.tree.Flat()); err != nil {
		return &platform.PersistenceError{Op: "save categories", Err: err}
	}
	return nil
}

func (e *Editor) load(ctx context.Context) error {
	if e.tree != nil {
		return nil
	}

	flat, err := e.store.LoadCategories(ctx)
	if err != nil {
		return &platform.PersistenceError{Op: "load categories", Err: err}
	}
	tree, err := New(flat, e.opts...)
	if err != nil {
		return err
	}
	e.tree = tree
	return nil
}
