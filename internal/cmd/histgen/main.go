// Package main generates the Histogram array-length constraint for labelcell.
//
// Go generics cannot abstract over array lengths, so the constraint is a
// union of every supported ~[N]W term.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
)

// maxUnionTerms is the compiler's limit on terms in one type union.
const maxUnionTerms = 100

var (
	maxLabels = flag.Int("n", maxUnionTerms, "largest supported label count")
	output    = flag.String("o", "histogram_gen.go", "output file")
	pkg       = flag.String("pkg", "labelcell", "package name")
)

func main() {
	flag.Parse()

	src, err := generate(*pkg, *maxLabels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *output, err)
		os.Exit(1)
	}
}

func generate(pkg string, n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("-n must be positive, got %d", n)
	}
	if n > maxUnionTerms {
		return nil, fmt.Errorf("-n %d exceeds %d: the Go compiler cannot handle more than %d union terms in a constraint", n, maxUnionTerms, maxUnionTerms)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by internal/cmd/histgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// MaxLabels is the largest label count a Histogram array may have.\n")
	fmt.Fprintf(&buf, "const MaxLabels = %d\n\n", n)
	buf.WriteString("// Histogram is satisfied by any fixed-length array of W with 1 to MaxLabels\n")
	buf.WriteString("// elements. The array length is the label count of the cell.\n")
	buf.WriteString("type Histogram[W Weight] interface {\n")
	for i := 1; i <= n; i++ {
		if i == 1 {
			fmt.Fprintf(&buf, "\t~[%d]W", i)
			continue
		}
		fmt.Fprintf(&buf, " |\n\t\t~[%d]W", i)
	}
	buf.WriteString("\n}\n")

	return format.Source(buf.Bytes())
}
