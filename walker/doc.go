// Package walker traverses element forests produced by xsdtree and calls
// handlers for each node.
//
// The walker visits nodes depth-first in declaration order, matching the
// order positional predicates were assigned in. Handlers control traversal
// through the returned Action: Continue, SkipChildren, or Stop.
//
//	err := walker.Walk(forest.Roots,
//		walker.WithNodeHandler(func(wc *walker.WalkContext, node *xsdtree.ElementNode) walker.Action {
//			fmt.Println(wc.Path, node.Cardinality)
//			return walker.Continue
//		}),
//	)
//
// The collector helpers cover the common cases: CollectNodes, CollectPaths,
// and NodesByPath.
package walker
