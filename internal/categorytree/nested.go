package categorytree

import (
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/samber/lo"
)

// Node is category in nested form.
type Node struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	RawCategories []string `json:"rawCategories"`
	Children      []Node   `json:"children"`
}

// Nest converts flat categories into nested form, ordering siblings by Order.
func Nest(flat []models.StoreCategory) ([]Node, error) {
	t, err := New(flat)
	if err != nil {
		return nil, err
	}

	nested := make([]Node, 0, len(t.roots))
	for _, id := range t.roots {
		nested = append(nested, t.nest(id))
	}
	return nested, nil
}

func (t *Tree) nest(id string) Node {
	n := t.nodes[id]
	children := make([]Node, 0, len(n.children))
	for _, childID := range n.children {
		children = append(children, t.nest(childID))
	}
	return Node{
		ID:            n.id,
		Name:          n.name,
		RawCategories: append([]string{}, n.rawCategories...),
		Children:      children,
	}
}

// Flatten converts nested categories into flat pre-order list with parent links
// and order recomputed per sibling group.
func Flatten(nested []Node) []models.StoreCategory {
	var flat []models.StoreCategory
	flatten(nested, nil, &flat)
	return flat
}

func flatten(nodes []Node, parentID *string, flat *[]models.StoreCategory) {
	for order, n := range nodes {
		*flat = append(*flat, models.StoreCategory{
			ID:            n.ID,
			Name:          n.Name,
			ParentID:      parentID,
			Order:         order,
			RawCategories: append([]string{}, n.RawCategories...),
		})
		flatten(n.Children, lo.ToPtr(n.ID), flat)
	}
}
