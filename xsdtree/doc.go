// Package xsdtree turns a set of interrelated XSD files into a forest of
// element nodes annotated with stable, absolute path identifiers.
//
// The pipeline has four stages, each usable on its own:
//
//   - Collector discovers every schema file transitively reachable from the
//     entry paths via import/include/redefine references.
//   - ResolvePrefixes builds the namespace-URI to preferred-prefix table
//     from the discovered files' root elements (first declaration wins).
//   - A Compiler — the bundled DOMCompiler by default — turns the files into
//     the global element set plus type and group lookup tables.
//   - TreeBuilder descends through each global element's content model with
//     per-branch cycle protection, and ComputePaths assigns each node a
//     unique absolute path, disambiguating repeated sibling names with
//     positional predicates.
//
// BuildForest wires the stages together:
//
//	forest, err := xsdtree.BuildForest(
//		xsdtree.WithEntryPaths("invoice.xsd"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for node, path := range forest.Paths {
//		fmt.Println(path, node.Cardinality)
//	}
//
// # Cycle protection
//
// Self-referential and mutually recursive complex types terminate: a descent
// that re-enters a named type already on its own path stops there, returning
// the node childless. The guard tracks type identity per descent branch, not
// globally, so the same reusable type expands fully under unrelated siblings
// and choice alternatives.
//
// # Determinism
//
// Children are appended in schema declaration order, discovered files keep a
// deterministic order, and the prefix table is first-wins over that order —
// so computed paths are reproducible across runs on identical input.
package xsdtree
