// Package docmerge attaches external per-element business documentation to
// an element forest by exact path match.
//
// Documentation records carry up to two candidate path keys. NewLookup
// registers each record under its primary key, falling back to the secondary
// key only when the primary collides with an already-registered record.
// Apply then populates a node's documentation fields if and only if the
// node's computed absolute path is present as a key, descending into
// children regardless of whether the parent matched.
//
//	records, err := docmerge.LoadRecords("terms.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	matched := docmerge.Apply(forest.Roots, docmerge.NewLookup(records))
package docmerge
