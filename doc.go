// Package xsdtools provides tools for turning a set of interrelated XML
// Schema (XSD) files into a navigable element tree annotated with stable,
// absolute path identifiers.
//
// The computed paths let external per-element business documentation be
// attached to the correct schema node by exact path match, which is the
// typical workflow for standards like UN/CEFACT invoice schemas where the
// business meaning of each element lives in a separate document.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - xsdtree: discover schema files, compile their structural model, build
//     the element forest, and compute absolute paths
//   - walker: traverse a finished forest with visitor callbacks
//   - docmerge: attach documentation records to nodes by exact path match
//
// Typed errors live in the xsderrors package and support errors.Is and
// errors.As.
//
// # Quick Start
//
// Build an annotated forest from an entry schema:
//
//	import "github.com/jfeld/xsdtools/xsdtree"
//
//	forest, err := xsdtree.BuildForest(
//		xsdtree.WithEntryPaths("invoice.xsd"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, root := range forest.Roots {
//		fmt.Println(root.Path)
//	}
//
// Attach documentation by path:
//
//	records, err := docmerge.LoadRecords("terms.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	docmerge.Apply(forest.Roots, docmerge.NewLookup(records))
//
// # Error Handling
//
// A run only fails outright when no usable entry paths are supplied.
// Unreadable files, malformed schema fragments, and unresolvable schema
// locations are recorded as warnings on the result so that a best-effort,
// possibly partial forest is still produced.
package xsdtools
