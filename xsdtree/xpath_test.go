package xsdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(name string, children ...*ElementNode) *ElementNode {
	return &ElementNode{Name: name, Children: children}
}

func TestComputePaths_UniqueSiblingsGetNoPredicate(t *testing.T) {
	root := node("inv:Invoice",
		node("inv:ID"),
		node("inv:Note"),
	)
	paths := ComputePaths([]*ElementNode{root})

	assert.Equal(t, "/inv:Invoice", root.Path)
	assert.Equal(t, "/inv:Invoice/inv:ID", root.Children[0].Path)
	assert.Equal(t, "/inv:Invoice/inv:Note", root.Children[1].Path)
	assert.Len(t, paths, 3)
}

func TestComputePaths_RepeatedSiblingNamesAreIndexed(t *testing.T) {
	// X, Y, X: only the repeated name gets predicates, numbered across the
	// whole sibling group in appearance order.
	root := node("r",
		node("X"),
		node("Y"),
		node("X"),
	)
	ComputePaths([]*ElementNode{root})

	assert.Equal(t, "/r/X[1]", root.Children[0].Path)
	assert.Equal(t, "/r/Y", root.Children[1].Path)
	assert.Equal(t, "/r/X[2]", root.Children[2].Path)
}

func TestComputePaths_RootsAreOneSiblingGroup(t *testing.T) {
	forest := []*ElementNode{node("inv:Invoice"), node("inv:Invoice"), node("inv:CreditNote")}
	ComputePaths(forest)

	assert.Equal(t, "/inv:Invoice[1]", forest[0].Path)
	assert.Equal(t, "/inv:Invoice[2]", forest[1].Path)
	assert.Equal(t, "/inv:CreditNote", forest[2].Path)
}

func TestComputePaths_PredicateScopeResetsPerParent(t *testing.T) {
	// The same repeated name under different parents restarts its numbering.
	root := node("r",
		node("group", node("Item"), node("Item")),
		node("group", node("Item")),
	)
	ComputePaths([]*ElementNode{root})

	assert.Equal(t, "/r/group[1]/Item[1]", root.Children[0].Children[0].Path)
	assert.Equal(t, "/r/group[1]/Item[2]", root.Children[0].Children[1].Path)
	assert.Equal(t, "/r/group[2]/Item", root.Children[1].Children[0].Path)
}

func TestComputePaths_EmptyNameBecomesWildcard(t *testing.T) {
	root := node("r", node(""))
	ComputePaths([]*ElementNode{root})
	assert.Equal(t, "/r/*", root.Children[0].Path)
}

func TestComputePaths_Idempotent(t *testing.T) {
	root := node("r",
		node("X"),
		node("X", node("leaf")),
	)
	first := ComputePaths([]*ElementNode{root})
	second := ComputePaths([]*ElementNode{root})

	require.Len(t, second, len(first))
	for n, p := range first {
		assert.Equal(t, p, second[n])
		assert.Equal(t, p, n.Path)
	}
}

func TestComputePaths_EmptyForest(t *testing.T) {
	assert.Empty(t, ComputePaths(nil))
}
