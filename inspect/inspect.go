// Package inspect writes Graphviz dumps of live game structures for debugging
package inspect

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
)

// DumpState writes a dot graph of the values reachable from each root
func DumpState(w io.Writer, roots ...any) {
	memviz.Map(w, roots...)
}

// DumpStateFile writes the dot graph to path, replacing any existing file
func DumpStateFile(path string, roots ...any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dumpstate: %w", err)
	}
	DumpState(f, roots...)
	if err := f.Close(); err != nil {
		return fmt.Errorf("dumpstate: %w", err)
	}
	return nil
}
