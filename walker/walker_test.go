package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfeld/xsdtools/xsdtree"
)

// testForest builds a small annotated forest:
//
//	/r
//	  /r/a
//	    /r/a/leaf
//	  /r/b
//	/s
func testForest() []*xsdtree.ElementNode {
	forest := []*xsdtree.ElementNode{
		{Name: "r", Children: []*xsdtree.ElementNode{
			{Name: "a", Children: []*xsdtree.ElementNode{
				{Name: "leaf"},
			}},
			{Name: "b"},
		}},
		{Name: "s"},
	}
	xsdtree.ComputePaths(forest)
	return forest
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(42)", Action(42).String())
}

func TestActionIsValid(t *testing.T) {
	assert.True(t, Continue.IsValid())
	assert.True(t, SkipChildren.IsValid())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(-1).IsValid())
	assert.False(t, Action(3).IsValid())
}

func TestWalk_DepthFirstOrder(t *testing.T) {
	var visited []string
	var depths []int
	err := Walk(testForest(), WithNodeHandler(func(wc *WalkContext, node *xsdtree.ElementNode) Action {
		visited = append(visited, node.Name)
		depths = append(depths, wc.Depth)
		return Continue
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a", "leaf", "b", "s"}, visited)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, depths)
}

func TestWalk_ContextParentAndPath(t *testing.T) {
	parents := make(map[string]string)
	err := Walk(testForest(), WithNodeHandler(func(wc *WalkContext, node *xsdtree.ElementNode) Action {
		assert.Equal(t, node.Path, wc.Path)
		if wc.Parent != nil {
			parents[node.Name] = wc.Parent.Name
		}
		return Continue
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "r", "leaf": "a", "b": "r"}, parents)
}

func TestWalk_SkipChildren(t *testing.T) {
	var visited []string
	err := Walk(testForest(), WithNodeHandler(func(_ *WalkContext, node *xsdtree.ElementNode) Action {
		visited = append(visited, node.Name)
		if node.Name == "a" {
			return SkipChildren
		}
		return Continue
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a", "b", "s"}, visited, "leaf is skipped, siblings are not")
}

func TestWalk_Stop(t *testing.T) {
	var visited []string
	err := Walk(testForest(), WithNodeHandler(func(_ *WalkContext, node *xsdtree.ElementNode) Action {
		visited = append(visited, node.Name)
		if node.Name == "a" {
			return Stop
		}
		return Continue
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a"}, visited, "stop halts the whole walk, later roots included")
}

func TestWalk_NoHandler(t *testing.T) {
	err := New().Walk(testForest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no node handler")
}

func TestWalk_NilNodesAreSkipped(t *testing.T) {
	forest := []*xsdtree.ElementNode{
		nil,
		{Name: "r", Children: []*xsdtree.ElementNode{nil, {Name: "a"}}},
	}
	var visited []string
	err := Walk(forest, WithNodeHandler(func(_ *WalkContext, node *xsdtree.ElementNode) Action {
		visited = append(visited, node.Name)
		return Continue
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "a"}, visited)
}

func TestCollectNodes(t *testing.T) {
	forest := testForest()
	collected := CollectNodes(forest)

	require.Len(t, collected.All, 5)
	assert.Equal(t, "/r", collected.All[0].Path)
	assert.Equal(t, 2, collected.ByPath["/r/a/leaf"].Depth)
	assert.Same(t, forest[1], collected.ByPath["/s"].Node)
}

func TestCollectPaths(t *testing.T) {
	assert.Equal(t,
		[]string{"/r", "/r/a", "/r/a/leaf", "/r/b", "/s"},
		CollectPaths(testForest()))
}

func TestNodesByPath(t *testing.T) {
	forest := testForest()
	nodes := NodesByPath(forest)
	require.Len(t, nodes, 5)
	assert.Same(t, forest[0].Children[1], nodes["/r/b"])
}
