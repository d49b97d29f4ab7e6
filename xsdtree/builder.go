package xsdtree

import "strings"

// typeSet is the cycle guard: the named structured types already entered on
// the current descent path. Sets are never shared across branches; every
// branch point receives its own copy, so truncating one path never affects
// an unrelated sibling or choice alternative that reaches the same type.
type typeSet map[QName]struct{}

func (s typeSet) has(q QName) bool {
	_, ok := s[q]
	return ok
}

func (s typeSet) clone() typeSet {
	c := make(typeSet, len(s)+1)
	for q := range s {
		c[q] = struct{}{}
	}
	return c
}

// frame is one level of the explicit work-stack: a node under construction,
// the remaining particles at its nesting level, and the visited-type set for
// that level. Group-reference inlining pushes a frame that keeps the same
// parent, since it does not enter a new element.
type frame struct {
	parent  *ElementNode
	items   []Particle
	next    int
	visited typeSet
}

// TreeBuilder builds one ElementNode tree per global element declaration,
// descending through sequence/choice/group-reference content models with
// per-branch cycle protection.
type TreeBuilder struct {
	// Prefixes maps namespace URIs to preferred display prefixes.
	// The map is treated as read-only.
	Prefixes map[string]string

	// Logger is the structured logger for debug output.
	// If nil, logging is disabled.
	Logger Logger

	// Parallelism is the number of root builds to run concurrently.
	// Values below 2 build sequentially. Forest order is identical either
	// way: results are assigned by declaration index.
	Parallelism int
}

func (b *TreeBuilder) log() Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return NopLogger{}
}

// Build constructs the forest: one root per global element, in declaration
// order. Every root starts with a fresh, empty cycle-detection set; roots
// never share cycle state.
func (b *TreeBuilder) Build(comp *Compilation) []*ElementNode {
	if comp == nil {
		return nil
	}
	if b.Parallelism > 1 && len(comp.GlobalElements) > 1 {
		return b.buildParallel(comp)
	}
	roots := make([]*ElementNode, len(comp.GlobalElements))
	for i, decl := range comp.GlobalElements {
		roots[i] = b.buildRoot(decl, comp)
	}
	return roots
}

// buildRoot builds the tree for one global element using an explicit work
// stack instead of call recursion, so descent depth is bounded by memory
// rather than goroutine stack, and the copy-on-branch rule for the visited
// set is explicit in each dispatch arm.
func (b *TreeBuilder) buildRoot(decl *ElementDecl, comp *Compilation) *ElementNode {
	root := b.newNode(decl, comp)
	stack := make([]*frame, 0, 8)
	if f := b.enterType(root, decl, comp, make(typeSet)); f != nil {
		stack = append(stack, f)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		item := top.items[top.next]
		top.next++

		switch p := item.(type) {
		case *ElementDecl:
			child := b.newNode(p, comp)
			top.parent.Children = append(top.parent.Children, child)
			// Entering a new element: the descent gets its own copy of the
			// current visited state.
			if f := b.enterType(child, p, comp, top.visited.clone()); f != nil {
				stack = append(stack, f)
			}

		case *ModelGroup:
			// Nested compositor at the same node: choice alternatives and
			// nested groups each branch with their own copy so they do not
			// share cycle state with each other or with this level.
			stack = append(stack, &frame{
				parent:  top.parent,
				items:   p.Particles,
				visited: top.visited.clone(),
			})

		case *GroupRef:
			// Inlining a reusable fragment stays at this nesting level and
			// continues with the current visited state.
			g := comp.Groups[p.Ref]
			if g == nil {
				b.log().Debug("unresolved group reference", "group", p.Ref.String())
				continue
			}
			if len(g.Particles) > 0 {
				stack = append(stack, &frame{
					parent:  top.parent,
					items:   g.Particles,
					visited: top.visited.clone(),
				})
			}
		}
	}

	return root
}

// enterType resolves decl's structural type and, when it is a complex type
// not already on this descent path, returns the frame for its content model.
// A nil return leaves the node childless: the type is simple, anonymous
// without content, unresolved, or a cycle was truncated.
//
// The visited set passed in must be owned by this descent; it is extended
// in place with the entered type's key and becomes the new frame's state.
func (b *TreeBuilder) enterType(node *ElementNode, decl *ElementDecl, comp *Compilation, visited typeSet) *frame {
	ct := b.resolveComplexType(decl, comp)
	if ct == nil || ct.Content == nil {
		return nil
	}

	// Cycle guard on type identity along this single descent path. Anonymous
	// types have no key: they cannot be referenced, so they cannot recur.
	if !ct.Name.IsZero() {
		if visited.has(ct.Name) {
			b.log().Debug("cycle truncated", "type", ct.Name.String(), "node", node.Name)
			return nil
		}
		visited[ct.Name] = struct{}{}
	}

	switch content := ct.Content.(type) {
	case *ModelGroup:
		return &frame{parent: node, items: content.Particles, visited: visited}
	case *GroupRef:
		g := comp.Groups[content.Ref]
		if g == nil || len(g.Particles) == 0 {
			return nil
		}
		return &frame{parent: node, items: g.Particles, visited: visited}
	}
	return nil
}

// resolveComplexType returns the element's structural type: its inline type
// if present, else the declared type name looked up in the global type
// table. Element references resolve through the referenced global element.
func (b *TreeBuilder) resolveComplexType(decl *ElementDecl, comp *Compilation) *ComplexType {
	target := b.effectiveDecl(decl, comp)
	var t Type
	switch {
	case target.InlineType != nil:
		t = target.InlineType
	case !target.TypeName.IsZero():
		t = comp.Types[target.TypeName]
	}
	ct, _ := t.(*ComplexType)
	return ct
}

// effectiveDecl follows an element reference to its global declaration.
// When the reference cannot be resolved the particle itself is used, which
// yields a childless node carrying the referenced name.
func (b *TreeBuilder) effectiveDecl(decl *ElementDecl, comp *Compilation) *ElementDecl {
	if decl.Ref.IsZero() {
		return decl
	}
	if global, ok := comp.Elements[decl.Ref]; ok {
		return global
	}
	return decl
}

// newNode builds the display node for an element declaration: prefixed
// display name, prefixed display type name, and cardinality.
func (b *TreeBuilder) newNode(decl *ElementDecl, comp *Compilation) *ElementNode {
	// Prefer the explicit reference name, else the element's own qualified
	// name; a zero Space falls back to the bare local name naturally.
	qname := decl.Name
	if !decl.Ref.IsZero() {
		qname = decl.Ref
	}

	target := b.effectiveDecl(decl, comp)
	typeName := target.TypeName
	if typeName.IsZero() && target.InlineType != nil {
		typeName = target.InlineType.TypeName()
	}

	node := &ElementNode{
		Name: b.displayName(qname),
		// Occurrence constraints belong to the referencing particle, not
		// the referenced declaration.
		Cardinality: formatCardinality(decl.MinOccurs, decl.MaxOccurs),
	}
	if !typeName.IsZero() {
		node.TypeName = b.displayName(typeName)
	}
	return node
}

// displayName renders a qualified name with its preferred prefix. When the
// namespace has no mapping, a best-effort prefix is derived from the last
// non-empty URI segment; when that yields nothing, the bare local name is
// used.
func (b *TreeBuilder) displayName(q QName) string {
	if q.Local == "" {
		return ""
	}
	if q.Space == "" {
		return q.Local
	}
	prefix, ok := b.Prefixes[q.Space]
	if !ok {
		prefix = derivePrefix(q.Space)
	}
	if prefix == "" {
		return q.Local
	}
	return prefix + ":" + q.Local
}

// derivePrefix extracts a usable prefix from a namespace URI: the last
// non-empty '/'-delimited segment, stripped to alphanumeric, '_', and '-'.
func derivePrefix(uri string) string {
	segments := strings.Split(uri, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		var sb strings.Builder
		for _, r := range segments[i] {
			if r == '_' || r == '-' ||
				(r >= '0' && r <= '9') ||
				(r >= 'a' && r <= 'z') ||
				(r >= 'A' && r <= 'Z') {
				sb.WriteRune(r)
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}

// formatCardinality renders raw occurrence attributes as "{min}..{max}",
// with "*" for unbounded. Empty raw values mean the schema default of 1.
// Malformed occurrence data yields an empty string rather than an error.
func formatCardinality(minRaw, maxRaw string) string {
	minVal, ok := occursValue(minRaw)
	if !ok {
		return ""
	}
	maxVal := minVal
	switch maxRaw {
	case "":
		maxVal = "1"
	case "unbounded":
		maxVal = "*"
	default:
		if maxVal, ok = occursValue(maxRaw); !ok {
			return ""
		}
	}
	return minVal + ".." + maxVal
}

// occursValue validates a raw occurrence attribute. Empty means the default
// of 1; anything non-numeric is malformed.
func occursValue(raw string) (string, bool) {
	if raw == "" {
		return "1", true
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return raw, true
}
