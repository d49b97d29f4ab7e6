package xsdtree

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/jfeld/xsdtools/xsderrors"
)

// nsDecl is one xmlns declaration found on a root element.
type nsDecl struct {
	prefix string // "" for the default namespace
	uri    string
}

// ResolvePrefixes scans the root element of every file and builds a single
// namespace-URI to preferred-prefix table. A URI already present in the map
// is never overwritten: the first file processed wins, and within a file the
// first declaration wins.
//
// Only the root element's attributes are read; scanning stops at the first
// start element, so a file with a well-formed root but a malformed body
// still contributes its declarations. Files whose root cannot be read are
// skipped and reported as non-fatal *xsderrors.PrefixError warnings.
func ResolvePrefixes(files []string) (map[string]string, []error) {
	prefixes := make(map[string]string)
	var warnings []error

	for _, file := range files {
		decls, err := rootNamespaceDecls(file)
		if err != nil {
			warnings = append(warnings, &xsderrors.PrefixError{Path: file, Cause: err})
			continue
		}
		for _, d := range decls {
			if _, ok := prefixes[d.uri]; !ok {
				prefixes[d.uri] = d.prefix
			}
		}
	}

	return prefixes, warnings
}

// rootNamespaceDecls returns the xmlns declarations on a file's root element,
// in attribute order.
func rootNamespaceDecls(path string) ([]nsDecl, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, errors.New("no root element")
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var decls []nsDecl
		for _, a := range start.Attr {
			switch {
			case a.Name.Space == "xmlns":
				decls = append(decls, nsDecl{prefix: a.Name.Local, uri: a.Value})
			case a.Name.Space == "" && a.Name.Local == "xmlns":
				decls = append(decls, nsDecl{prefix: "", uri: a.Value})
			}
		}
		return decls, nil
	}
}
