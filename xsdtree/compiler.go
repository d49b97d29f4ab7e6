package xsdtree

import (
	"strings"

	"github.com/agentflare-ai/go-xmldom"

	"github.com/jfeld/xsdtools/xsderrors"
)

// xmlNamespace is the URI bound to the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// DOMCompiler is the bundled Compiler implementation. It DOM-parses each
// discovered file and extracts the structural model needed for tree
// construction: global elements, named types, and named groups.
//
// Compilation is best-effort: a file that cannot be parsed, a document whose
// root is not an XML Schema, or a duplicate global declaration produces a
// *xsderrors.CompileError warning and compilation continues. Attributes,
// wildcards, and simple-type facets are not extracted.
type DOMCompiler struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled.
	Logger Logger
}

func (c *DOMCompiler) log() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NopLogger{}
}

// Ensure DOMCompiler implements Compiler at compile time.
var _ Compiler = (*DOMCompiler)(nil)

// Compile parses the given files in order and aggregates their global
// declarations. Declaration order is preserved: file order first, document
// order within each file. On name conflicts the first declaration wins and a
// warning is recorded.
func (c *DOMCompiler) Compile(files []string) (*Compilation, error) {
	comp := &Compilation{
		Elements: make(map[QName]*ElementDecl),
		Types:    make(map[QName]Type),
		Groups:   make(map[QName]*ModelGroup),
	}

	for _, file := range files {
		doc, err := decodeFile(file)
		if err != nil {
			comp.Warnings = append(comp.Warnings, &xsderrors.CompileError{Path: file, Cause: err})
			c.log().Warn("skipping uncompilable schema file", "path", file, "error", err)
			continue
		}
		root := doc.DocumentElement()
		if root == nil || !isSchemaElement(root, "schema") {
			comp.Warnings = append(comp.Warnings, &xsderrors.CompileError{
				Path:    file,
				Message: "root element is not an XML Schema",
			})
			continue
		}
		c.compileSchema(comp, newFileScope(root), root, file)
	}

	c.log().Debug("compilation finished",
		"globalElements", len(comp.GlobalElements),
		"types", len(comp.Types),
		"groups", len(comp.Groups),
		"warnings", len(comp.Warnings))
	return comp, nil
}

// compileSchema registers the global declarations of one schema document.
func (c *DOMCompiler) compileSchema(comp *Compilation, scope *fileScope, parent xmldom.Element, file string) {
	forEachChild(parent, func(child xmldom.Element) {
		if string(child.NamespaceURI()) != XSDNamespace {
			return
		}
		switch string(child.LocalName()) {
		case "element":
			decl := scope.parseGlobalElement(child)
			if decl == nil {
				return
			}
			if _, dup := comp.Elements[decl.Name]; dup {
				comp.Warnings = append(comp.Warnings, &xsderrors.CompileError{
					Path:    file,
					Message: "duplicate global element " + decl.Name.String(),
				})
				return
			}
			comp.Elements[decl.Name] = decl
			comp.GlobalElements = append(comp.GlobalElements, decl)

		case "complexType":
			name := attr(child, "name")
			if name == "" {
				return
			}
			qname := QName{Space: scope.targetNS, Local: name}
			if _, dup := comp.Types[qname]; dup {
				comp.Warnings = append(comp.Warnings, &xsderrors.CompileError{
					Path:    file,
					Message: "duplicate type " + qname.String(),
				})
				return
			}
			comp.Types[qname] = scope.parseComplexType(child, qname)

		case "simpleType":
			name := attr(child, "name")
			if name == "" {
				return
			}
			qname := QName{Space: scope.targetNS, Local: name}
			if _, dup := comp.Types[qname]; !dup {
				comp.Types[qname] = &SimpleType{Name: qname}
			}

		case "group":
			name := attr(child, "name")
			if name == "" {
				return
			}
			qname := QName{Space: scope.targetNS, Local: name}
			if _, dup := comp.Groups[qname]; dup {
				comp.Warnings = append(comp.Warnings, &xsderrors.CompileError{
					Path:    file,
					Message: "duplicate group " + qname.String(),
				})
				return
			}
			if mg := scope.parseGroupDef(child); mg != nil {
				comp.Groups[qname] = mg
			}

		case "redefine":
			// Redefined components are declared inline; the redefined file
			// itself was discovered separately. First declaration wins.
			c.compileSchema(comp, scope, child, file)
		}
	})
}

// fileScope holds the per-document state needed to resolve qualified names:
// the target namespace, the element qualification form, and the root
// element's prefix bindings.
type fileScope struct {
	targetNS   string
	qualified  bool
	nsByPrefix map[string]string
	defaultNS  string
}

func newFileScope(root xmldom.Element) *fileScope {
	scope := &fileScope{
		targetNS:   attr(root, "targetNamespace"),
		qualified:  attr(root, "elementFormDefault") == "qualified",
		nsByPrefix: map[string]string{"xml": xmlNamespace},
	}

	attrs := root.Attributes()
	for i := uint(0); i < attrs.Length(); i++ {
		a := attrs.Item(i)
		if a == nil {
			continue
		}
		name := string(a.NodeName())
		switch {
		case name == "xmlns":
			scope.defaultNS = string(a.NodeValue())
		case strings.HasPrefix(name, "xmlns:"):
			scope.nsByPrefix[strings.TrimPrefix(name, "xmlns:")] = string(a.NodeValue())
		case string(a.NamespaceURI()) == "xmlns":
			// xmldom reports prefixed namespace declarations with the bare
			// prefix as the node name and "xmlns" as the namespace URI.
			scope.nsByPrefix[name] = string(a.NodeValue())
		}
	}
	return scope
}

// parseQName resolves a possibly-prefixed name against the document's root
// prefix bindings. Unprefixed names resolve through the default namespace.
func (s *fileScope) parseQName(raw string) QName {
	if raw == "" {
		return QName{}
	}
	if prefix, local, found := strings.Cut(raw, ":"); found {
		return QName{Space: s.nsByPrefix[prefix], Local: local}
	}
	return QName{Space: s.defaultNS, Local: raw}
}

// localElementName qualifies a locally declared element name according to
// the document's elementFormDefault.
func (s *fileScope) localElementName(name string) QName {
	if s.qualified {
		return QName{Space: s.targetNS, Local: name}
	}
	return QName{Local: name}
}

// parseGlobalElement parses a top-level element declaration. Global
// elements are always qualified by the target namespace.
func (s *fileScope) parseGlobalElement(el xmldom.Element) *ElementDecl {
	name := attr(el, "name")
	if name == "" {
		return nil
	}
	decl := &ElementDecl{
		Name:      QName{Space: s.targetNS, Local: name},
		TypeName:  s.parseQName(attr(el, "type")),
		MinOccurs: attr(el, "minOccurs"),
		MaxOccurs: attr(el, "maxOccurs"),
	}
	s.parseInlineType(el, decl)
	return decl
}

// parseParticleElement parses an element particle inside a content model:
// either a reference to a global element or a local declaration.
func (s *fileScope) parseParticleElement(el xmldom.Element) *ElementDecl {
	decl := &ElementDecl{
		MinOccurs: attr(el, "minOccurs"),
		MaxOccurs: attr(el, "maxOccurs"),
	}
	if ref := attr(el, "ref"); ref != "" {
		decl.Ref = s.parseQName(ref)
		return decl
	}
	name := attr(el, "name")
	if name == "" {
		return nil
	}
	decl.Name = s.localElementName(name)
	decl.TypeName = s.parseQName(attr(el, "type"))
	s.parseInlineType(el, decl)
	return decl
}

// parseInlineType attaches an anonymous inline type definition, if present.
func (s *fileScope) parseInlineType(el xmldom.Element, decl *ElementDecl) {
	forEachChild(el, func(child xmldom.Element) {
		if decl.InlineType != nil || string(child.NamespaceURI()) != XSDNamespace {
			return
		}
		switch string(child.LocalName()) {
		case "complexType":
			decl.InlineType = s.parseComplexType(child, QName{})
		case "simpleType":
			decl.InlineType = &SimpleType{}
		}
	})
}

// parseComplexType parses a complex type definition's content model.
// name is the zero QName for anonymous inline types.
func (s *fileScope) parseComplexType(el xmldom.Element, name QName) *ComplexType {
	ct := &ComplexType{Name: name}
	forEachChild(el, func(child xmldom.Element) {
		if ct.Content != nil || string(child.NamespaceURI()) != XSDNamespace {
			return
		}
		switch string(child.LocalName()) {
		case "sequence", "choice", "all":
			ct.Content = s.parseModelGroup(child)
		case "group":
			if ref := attr(child, "ref"); ref != "" {
				ct.Content = &GroupRef{Ref: s.parseQName(ref)}
			}
		case "complexContent":
			ct.Content = s.parseDerivedContent(child)
		}
	})
	return ct
}

// parseDerivedContent extracts the inner model group of a complexContent
// extension or restriction. Base-type particles are not merged in.
func (s *fileScope) parseDerivedContent(el xmldom.Element) Particle {
	var content Particle
	forEachChild(el, func(derivation xmldom.Element) {
		if content != nil || string(derivation.NamespaceURI()) != XSDNamespace {
			return
		}
		switch string(derivation.LocalName()) {
		case "extension", "restriction":
			forEachChild(derivation, func(child xmldom.Element) {
				if content != nil || string(child.NamespaceURI()) != XSDNamespace {
					return
				}
				switch string(child.LocalName()) {
				case "sequence", "choice", "all":
					content = s.parseModelGroup(child)
				case "group":
					if ref := attr(child, "ref"); ref != "" {
						content = &GroupRef{Ref: s.parseQName(ref)}
					}
				}
			})
		}
	})
	return content
}

// parseModelGroup parses a sequence/choice/all compositor and its particles
// in declaration order. Wildcards (xs:any) are not traversed and contribute
// no particles.
func (s *fileScope) parseModelGroup(el xmldom.Element) *ModelGroup {
	mg := &ModelGroup{Kind: GroupKind(string(el.LocalName()))}
	forEachChild(el, func(child xmldom.Element) {
		if string(child.NamespaceURI()) != XSDNamespace {
			return
		}
		switch string(child.LocalName()) {
		case "element":
			if decl := s.parseParticleElement(child); decl != nil {
				mg.Particles = append(mg.Particles, decl)
			}
		case "sequence", "choice", "all":
			mg.Particles = append(mg.Particles, s.parseModelGroup(child))
		case "group":
			if ref := attr(child, "ref"); ref != "" {
				mg.Particles = append(mg.Particles, &GroupRef{Ref: s.parseQName(ref)})
			}
		}
	})
	return mg
}

// parseGroupDef parses a named group definition, returning its single
// compositor child.
func (s *fileScope) parseGroupDef(el xmldom.Element) *ModelGroup {
	var mg *ModelGroup
	forEachChild(el, func(child xmldom.Element) {
		if mg != nil || string(child.NamespaceURI()) != XSDNamespace {
			return
		}
		switch string(child.LocalName()) {
		case "sequence", "choice", "all":
			mg = s.parseModelGroup(child)
		}
	})
	return mg
}
