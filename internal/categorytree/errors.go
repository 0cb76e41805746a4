package categorytree

import "errors"

var (
	// ErrCategoryNotFound is returned when operation refers to category id missing in the tree.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCycle is returned when parent links would make category its own ancestor.
	ErrCycle = errors.New("category tree cycle")
	// ErrDuplicateID is returned when flat category list contains the same id twice.
	ErrDuplicateID = errors.New("duplicate category id")
	// ErrEmptyName is returned when category name is blank.
	ErrEmptyName = errors.New("category name is empty")
	// ErrEmptyRawCategory is returned when raw category to assign is blank.
	ErrEmptyRawCategory = errors.New("raw category is empty")
)
