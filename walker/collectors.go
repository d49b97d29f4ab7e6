package walker

import (
	"github.com/jfeld/xsdtools/xsdtree"
)

// NodeInfo contains information about a collected element node.
type NodeInfo struct {
	// Node is the collected node.
	Node *xsdtree.ElementNode

	// Path is the node's absolute path.
	Path string

	// Depth is the node's depth below its root; roots have depth 0.
	Depth int
}

// NodeCollector holds nodes collected during a walk.
type NodeCollector struct {
	// All contains all nodes in traversal order.
	All []*NodeInfo

	// ByPath provides lookup by absolute path. Paths are unique within a
	// forest, so every node is present.
	ByPath map[string]*NodeInfo
}

// CollectNodes walks the forest and collects every node.
func CollectNodes(roots []*xsdtree.ElementNode) *NodeCollector {
	collector := &NodeCollector{
		All:    make([]*NodeInfo, 0),
		ByPath: make(map[string]*NodeInfo),
	}

	// The handler never stops the walk, so the error can be ignored.
	_ = Walk(roots, WithNodeHandler(func(wc *WalkContext, node *xsdtree.ElementNode) Action {
		info := &NodeInfo{Node: node, Path: wc.Path, Depth: wc.Depth}
		collector.All = append(collector.All, info)
		collector.ByPath[wc.Path] = info
		return Continue
	}))

	return collector
}

// CollectPaths returns every node's absolute path in traversal order.
func CollectPaths(roots []*xsdtree.ElementNode) []string {
	collected := CollectNodes(roots)
	paths := make([]string, 0, len(collected.All))
	for _, info := range collected.All {
		paths = append(paths, info.Path)
	}
	return paths
}

// NodesByPath returns a lookup from absolute path to node.
func NodesByPath(roots []*xsdtree.ElementNode) map[string]*xsdtree.ElementNode {
	collected := CollectNodes(roots)
	nodes := make(map[string]*xsdtree.ElementNode, len(collected.All))
	for path, info := range collected.ByPath {
		nodes[path] = info.Node
	}
	return nodes
}
