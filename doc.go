// Package lsmat is a sparse two-dimensional matrix engine with a small
// command shell on top.
//
// What is in here?
//
//	matrix/          - the engine: Sparse storage, transposed Views, Add/Sub/Mul
//	internal/shell/  - the line-oriented interpreter (new, set, eval, disp, ...)
//	internal/config/ - defaults, lsmat.toml and LSMAT_* environment overrides
//	internal/logger/ - process-wide zap logger
//	cmd/lsmat/       - the lsmat binary
//
// Storage model:
//
//	Only non-zero entries are stored. Every entry is a single cell threaded
//	on two sorted lists at once: its row list (ascending column) and its
//	column list (ascending row). Row and column walks are therefore both
//	O(length of the line), and a transpose is just a swap of the two axes.
//
// Quick start:
//
//	a, _ := matrix.NewSparse(2, 2)
//	_ = a.Set(0, 1, 3)
//	at, _ := matrix.T(a)          // realized transpose
//	p, _ := matrix.Product(a, at) // a·aᵀ
//	for e := range p.NonZero() {
//		fmt.Printf("(%d,%d): %g\n", e.Row, e.Col, e.Value)
//	}
//
// From the shell:
//
//	$ lsmat
//	lsmat > new A 2 2
//	OK	0.000004211s
//	lsmat > set A 0 1 3
//	OK	0.000001032s
//	lsmat > eval B=A.T
//	OK	0.000003518s
//	lsmat > dispnzt B 0
//	(1,0): 3
//	OK	0.000002904s
package lsmat
