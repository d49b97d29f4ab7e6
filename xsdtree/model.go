package xsdtree

import "fmt"

// XSDNamespace is the XML Schema namespace.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// QName is a qualified XML name: a (namespace URI, local name) pair.
type QName struct {
	Space string
	Local string
}

// IsZero reports whether the name is entirely unset.
func (q QName) IsZero() bool {
	return q.Space == "" && q.Local == ""
}

// String returns the Clark notation form, "{space}local".
func (q QName) String() string {
	if q.Space == "" {
		return q.Local
	}
	return fmt.Sprintf("{%s}%s", q.Space, q.Local)
}

// Type is the interface for structural schema types. Only the qualified name
// is exposed; simple types are never traversed.
type Type interface {
	TypeName() QName
}

// SimpleType is a named simple type. It contributes a display type name and
// nothing else; facets, lists, and unions are out of scope.
type SimpleType struct {
	Name QName
}

// TypeName implements Type.
func (t *SimpleType) TypeName() QName { return t.Name }

// ComplexType is a structured type with an element content model.
// Name is the zero QName for anonymous inline types; only named complex
// types participate in cycle detection, since an anonymous type cannot be
// re-entered by reference.
type ComplexType struct {
	Name QName

	// Content is the type's content particle: a *ModelGroup or a *GroupRef.
	// Nil when the type declares no element content.
	Content Particle
}

// TypeName implements Type.
func (t *ComplexType) TypeName() QName { return t.Name }

// Particle is a tagged variant over content-model constructs: an element
// declaration, a model group (sequence/choice/all), or a group reference.
type Particle interface {
	isParticle()
}

// GroupKind identifies the compositor of a model group.
type GroupKind string

const (
	// GroupSequence is an ordered xs:sequence compositor.
	GroupSequence GroupKind = "sequence"
	// GroupChoice is an xs:choice compositor.
	GroupChoice GroupKind = "choice"
	// GroupAll is an xs:all compositor. It is treated like a sequence
	// during traversal.
	GroupAll GroupKind = "all"
)

// ModelGroup is a sequence, choice, or all compositor holding particles in
// declaration order.
type ModelGroup struct {
	Kind      GroupKind
	Particles []Particle
}

func (*ModelGroup) isParticle() {}

// GroupRef is a reference to a named, reusable model group.
type GroupRef struct {
	Ref QName
}

func (*GroupRef) isParticle() {}

// ElementDecl is an element declaration, either global or as a particle
// inside a content model.
//
// Occurrence values are kept as the raw attribute strings so that malformed
// data can be detected downstream: the tree builder renders malformed
// occurrences as an empty cardinality instead of failing.
type ElementDecl struct {
	// Name is the element's own qualified name. For local elements in a
	// schema without qualified element form, Space is empty.
	Name QName

	// Ref is the referenced global element's qualified name when this
	// particle is a reference (<xs:element ref="..."/>); zero otherwise.
	Ref QName

	// TypeName is the declared type reference (type="..."); zero when the
	// element carries an inline type or no type at all.
	TypeName QName

	// InlineType is the anonymous inline type definition, if present.
	InlineType Type

	// MinOccurs and MaxOccurs are the raw attribute values. Empty strings
	// mean the schema default of 1. MaxOccurs may be "unbounded".
	MinOccurs string
	MaxOccurs string
}

func (*ElementDecl) isParticle() {}

// Compilation is the output of the schema compiler capability: the global
// element set plus the type and group lookup tables.
//
// GlobalElements preserves declaration order across files (file discovery
// order, then document order within each file); this order determines forest
// order and therefore positional predicates.
type Compilation struct {
	// GlobalElements are the globally declared elements in declaration order.
	GlobalElements []*ElementDecl

	// Elements indexes the global elements by qualified name for
	// element-reference resolution.
	Elements map[QName]*ElementDecl

	// Types maps qualified type names to type definitions.
	Types map[QName]Type

	// Groups maps qualified group names to reusable content-model fragments.
	Groups map[QName]*ModelGroup

	// Warnings holds the non-fatal structural errors encountered during
	// best-effort compilation.
	Warnings []error
}

// Compiler is the schema compiler capability. The core trusts whatever
// global declarations an implementation hands it and never re-validates;
// any standards-compliant compiler exposing the same lookups is
// interchangeable with the bundled DOMCompiler.
type Compiler interface {
	Compile(files []string) (*Compilation, error)
}
