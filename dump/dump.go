package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/amirrezaask/setadt/set"

	"github.com/davecgh/go-spew/spew"
)

func This(obj any) {
	spew.Dump(obj)
}

func AndDie(obj any) {
	spew.Dump(obj)
	os.Exit(0)
}

// Set writes name and the members of s to w.
func Set[T comparable](w io.Writer, name string, s set.Set[T]) {
	fmt.Fprintf(w, "%s (%T, %d members)\n", name, s, s.Len())
	spew.Fdump(w, s.Elements())
}
