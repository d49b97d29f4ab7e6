package docmerge

import (
	"github.com/jfeld/xsdtools/walker"
	"github.com/jfeld/xsdtools/xsdtree"
)

// Lookup maps absolute path strings to documentation records.
type Lookup map[string]Record

// NewLookup builds a Lookup from records. Each record is registered under
// its primary path key; when that key is already taken by an earlier record,
// the record falls back to its AltPath key if present and free. Records with
// no usable key are dropped.
func NewLookup(records []Record) Lookup {
	lookup := make(Lookup, len(records))
	for _, rec := range records {
		if rec.Path != "" {
			if _, taken := lookup[rec.Path]; !taken {
				lookup[rec.Path] = rec
				continue
			}
		}
		if rec.AltPath != "" {
			if _, taken := lookup[rec.AltPath]; !taken {
				lookup[rec.AltPath] = rec
			}
		}
	}
	return lookup
}

// Apply attaches documentation to every node whose computed absolute path
// exactly matches a key in the lookup, and returns the number of nodes
// populated.
//
// A node with no matching key keeps its empty documentation fields, and
// children are processed regardless of whether their parent matched. Apply
// is the only mutation a finished forest receives after path computation.
func Apply(roots []*xsdtree.ElementNode, lookup Lookup) int {
	matched := 0
	// The handler never stops the walk, so the error can be ignored.
	_ = walker.Walk(roots, walker.WithNodeHandler(func(wc *walker.WalkContext, node *xsdtree.ElementNode) walker.Action {
		rec, ok := lookup[node.Path]
		if !ok {
			return walker.Continue
		}
		node.Documentation = xsdtree.Documentation{
			ID:           rec.ID,
			BusinessTerm: rec.BusinessTerm,
			BusinessRule: rec.BusinessRule,
			Description:  rec.Description,
			Profiles:     rec.Profiles,
		}
		matched++
		return walker.Continue
	}))
	return matched
}
