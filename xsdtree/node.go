package xsdtree

// Documentation holds the per-element business documentation attached by the
// docmerge step. All fields stay empty until a documentation record whose
// path key exactly matches the node's computed path is applied.
type Documentation struct {
	// ID is the record's stable identifier (e.g. a business term number).
	ID string
	// BusinessTerm is the element's business term.
	BusinessTerm string
	// BusinessRule is the rule text associated with the element.
	BusinessRule string
	// Description is the element's long-form description.
	Description string
	// Profiles lists per-profile support markers (e.g. MINIMUM, BASIC,
	// EXTENDED) in record order.
	Profiles []string
}

// ElementNode is one node of the element forest.
//
// A node belongs to exactly one parent even though the type graph it was
// built from may contain cycles: the tree builder truncates any descent that
// re-enters a type already on the current path.
type ElementNode struct {
	// Name is the prefixed display name, e.g. "rsm:CrossIndustryInvoice".
	Name string

	// TypeName is the prefixed display type name. Empty for simple or
	// anonymous types.
	TypeName string

	// Cardinality is the occurrence range rendered as "{min}..{max}",
	// with "*" denoting unbounded. Empty when the declared occurrence
	// data was malformed.
	Cardinality string

	// Children holds the child nodes in schema declaration order.
	// Declaration order is preserved across inlined group references.
	Children []*ElementNode

	// Path is the node's absolute path, set exactly once by ComputePaths.
	// Unique within the forest thanks to positional predicates.
	Path string

	// Documentation is populated by the docmerge step; empty until then.
	Documentation Documentation
}
