/*
Ren is an interpreter for a small language of quoted values, isotopes,
and composable actions. Values evaluate by walking blocks one
expression at a time:

    x: 10
    double: func [n [number]] [add n n]
    double x

Actions derive from other actions without wrappers on the Go stack:

    add5: specialize :add [a: 5]
    loud: adapt :add5 [probe b]
    sum3: augment :add [c [number]]

Ren is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/engine"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/reader/parser"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/system/options"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New(os.Stdout)

	if options.Interactive() {
		ui.Run(e, e.Syms(), e.Arena())

		return
	}

	label, source := "command", options.Command()

	if path := options.Script(); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			die(err)
		}

		label, source = path, string(b)
	} else if source == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			die(err)
		}

		label, source = "stdin", string(b)
	}

	arr, err := parser.New(e.Syms(), e.Arena()).Parse(label, source)
	if err != nil {
		die(err)
	}

	if _, err := e.Evaluate(cell.New(block.New(arr))); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
