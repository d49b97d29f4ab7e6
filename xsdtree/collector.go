package xsdtree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
	"golang.org/x/text/cases"

	"github.com/jfeld/xsdtools/xsderrors"
)

// referenceKinds are the schema constructs that pull in another schema file.
var referenceKinds = []string{"import", "include", "redefine"}

// Collector discovers every schema file transitively reachable from one or
// more entry paths via import/include/redefine references.
type Collector struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled.
	Logger Logger
}

func (c *Collector) log() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return NopLogger{}
}

// Collect performs a depth-first, stack-based traversal from each usable
// entry path and returns the deduplicated set of absolute file paths visited,
// in a deterministic order (entry order, then reference document order).
//
// Visited-path membership is case-insensitive on path strings. A file that
// fails to open or parse contributes no references but stays in the result;
// the failure is recorded as a non-fatal *xsderrors.DiscoveryError warning.
// schemaLocation targets that are remote URLs or missing on disk are
// silently ignored.
//
// Collect fails with a *xsderrors.ConfigError when the entry list is empty
// or entirely blank.
func (c *Collector) Collect(entries ...string) ([]string, []error, error) {
	usable := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			usable = append(usable, entry)
		}
	}
	if len(usable) == 0 {
		return nil, nil, &xsderrors.ConfigError{
			Option:  "EntryPaths",
			Message: "no usable entry paths supplied",
		}
	}

	fold := cases.Fold()
	visited := make(map[string]bool)
	var files []string
	var warnings []error

	for _, entry := range usable {
		abs, err := filepath.Abs(entry)
		if err != nil {
			warnings = append(warnings, &xsderrors.DiscoveryError{Path: entry, Cause: err})
			continue
		}
		if _, err := os.Stat(abs); err != nil {
			warnings = append(warnings, &xsderrors.DiscoveryError{
				Path:    abs,
				Message: "entry path does not exist",
				Cause:   err,
			})
			continue
		}

		stack := []string{abs}
		for len(stack) > 0 {
			path := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			key := fold.String(path)
			if visited[key] {
				continue
			}
			visited[key] = true
			files = append(files, path)
			c.log().Debug("discovered schema file", "path", path)

			refs, err := c.scanReferences(path)
			if err != nil {
				warnings = append(warnings, &xsderrors.DiscoveryError{Path: path, Cause: err})
				c.log().Warn("skipping unreadable schema file", "path", path, "error", err)
				continue
			}
			// Push in reverse so the first reference in document order
			// is the next file visited.
			for i := len(refs) - 1; i >= 0; i-- {
				if !visited[fold.String(refs[i])] {
					stack = append(stack, refs[i])
				}
			}
		}
	}

	return files, warnings, nil
}

// scanReferences parses a schema file and resolves the schemaLocation of
// every import/include/redefine element against the referencing file's
// directory. Only locations that exist on disk are returned.
func (c *Collector) scanReferences(path string) ([]string, error) {
	doc, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	root := doc.DocumentElement()
	if root == nil {
		return nil, nil
	}

	baseDir := filepath.Dir(path)
	var refs []string
	walkElements(root, func(el xmldom.Element) {
		if !c.isReference(el) {
			return
		}
		loc := attr(el, "schemaLocation")
		if loc == "" || strings.Contains(loc, "://") {
			// Absent or remote locations are not resolved.
			return
		}
		resolved := loc
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(baseDir, resolved)
		}
		resolved = filepath.Clean(resolved)
		if _, err := os.Stat(resolved); err != nil {
			c.log().Debug("ignoring unresolvable schemaLocation", "location", loc, "referencedBy", path)
			return
		}
		refs = append(refs, resolved)
	})

	return refs, nil
}

func (c *Collector) isReference(el xmldom.Element) bool {
	for _, kind := range referenceKinds {
		if isSchemaElement(el, kind) {
			return true
		}
	}
	return false
}
