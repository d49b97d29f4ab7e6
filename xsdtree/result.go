package xsdtree

// Forest is the result of a full build: the element trees plus the
// intermediate artifacts that determined them.
//
// Callers should treat a Forest as read-only, with one exception: the
// docmerge step populates each node's Documentation exactly once.
type Forest struct {
	// Roots are the element trees, one per global element, in declaration
	// order.
	Roots []*ElementNode

	// Files are the discovered schema files in discovery order.
	Files []string

	// Prefixes is the namespace-URI to preferred-prefix table the display
	// names were computed with. Read-only.
	Prefixes map[string]string

	// Paths maps every node to its absolute path. The same strings are set
	// on the nodes themselves.
	Paths map[*ElementNode]string

	// Warnings are the non-fatal discovery, prefix, and compilation
	// failures encountered during the build, in occurrence order.
	Warnings []error
}

// NodeByPath returns the node with the given absolute path, or nil.
// Paths are unique within the forest.
func (f *Forest) NodeByPath(path string) *ElementNode {
	for node, p := range f.Paths {
		if p == path {
			return node
		}
	}
	return nil
}

// BuildForest runs the whole pipeline: discover every schema file reachable
// from the entry paths, resolve the namespace-prefix table, compile the
// structural schema model, build the element forest, and compute absolute
// paths.
//
// The only fatal failure is a *xsderrors.ConfigError for unusable input;
// everything else is accumulated on Forest.Warnings and yields a best-effort,
// possibly partial forest.
//
// Example:
//
//	forest, err := xsdtree.BuildForest(
//		xsdtree.WithEntryPaths("invoice.xsd"),
//	)
func BuildForest(opts ...Option) (*Forest, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	log := cfg.logger
	if log == nil {
		log = NopLogger{}
	}

	collector := &Collector{Logger: log}
	files, warnings, err := collector.Collect(cfg.entries...)
	if err != nil {
		return nil, err
	}
	log.Info("schema discovery finished", "files", len(files))

	// The prefix table is built fully before any tree construction and is
	// read-only from here on.
	prefixes, prefixWarnings := ResolvePrefixes(files)
	warnings = append(warnings, prefixWarnings...)

	compiler := cfg.compiler
	if compiler == nil {
		compiler = &DOMCompiler{Logger: log}
	}
	comp, err := compiler.Compile(files)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, comp.Warnings...)

	builder := &TreeBuilder{
		Prefixes:    prefixes,
		Logger:      log,
		Parallelism: cfg.parallelism,
	}
	roots := builder.Build(comp)
	paths := ComputePaths(roots)
	log.Info("forest built", "roots", len(roots), "paths", len(paths), "warnings", len(warnings))

	return &Forest{
		Roots:    roots,
		Files:    files,
		Prefixes: prefixes,
		Paths:    paths,
		Warnings: warnings,
	}, nil
}
