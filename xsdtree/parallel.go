package xsdtree

import "golang.org/x/sync/errgroup"

// buildParallel builds independent root trees concurrently. Results are
// assigned by declaration index, so forest order — and therefore every
// positional predicate ComputePaths assigns later — is identical to a
// sequential run.
func (b *TreeBuilder) buildParallel(comp *Compilation) []*ElementNode {
	roots := make([]*ElementNode, len(comp.GlobalElements))

	var g errgroup.Group
	g.SetLimit(b.Parallelism)
	for i, decl := range comp.GlobalElements {
		g.Go(func() error {
			roots[i] = b.buildRoot(decl, comp)
			return nil
		})
	}
	// Root builds only read the compilation and write disjoint slots;
	// no build returns an error.
	_ = g.Wait()

	return roots
}
