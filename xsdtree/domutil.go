package xsdtree

import (
	"os"

	"github.com/agentflare-ai/go-xmldom"
)

// decodeFile opens and DOM-parses a single XML file.
func decodeFile(path string) (xmldom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return xmldom.Decode(f)
}

// forEachChild invokes fn for every non-nil child element of el.
func forEachChild(el xmldom.Element, fn func(child xmldom.Element)) {
	children := el.Children()
	for i := uint(0); i < children.Length(); i++ {
		if child := children.Item(i); child != nil {
			fn(child)
		}
	}
}

// walkElements invokes fn for el and every element below it, in document order.
func walkElements(el xmldom.Element, fn func(xmldom.Element)) {
	fn(el)
	forEachChild(el, func(child xmldom.Element) {
		walkElements(child, fn)
	})
}

// isSchemaElement reports whether el is in the XML Schema namespace with the
// given local name.
func isSchemaElement(el xmldom.Element, local string) bool {
	return string(el.NamespaceURI()) == XSDNamespace && string(el.LocalName()) == local
}

// attr returns the value of the named attribute, or "" when absent.
func attr(el xmldom.Element, name string) string {
	return string(el.GetAttribute(xmldom.DOMString(name)))
}
