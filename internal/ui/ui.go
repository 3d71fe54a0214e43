// Released under an MIT license. See LICENSE.

// Package ui provides the interactive ren console.
package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/void"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/reader/parser"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/system/history"
)

// Evaluator is the interface for things that run parsed source.
type Evaluator interface {
	Evaluate(c cell.T) (cell.T, error)
}

// Run launches the console, which hands complete inputs to the
// evaluator e. Source that ends inside an open block keeps reading.
func Run(e Evaluator, st *sym.Table, ar *arena.T) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	p := parser.New(st, ar)

	buffer := ""
	prompt := "ren> "

	for {
		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			buffer = ""
			prompt = "ren> "

			continue
		default:
			fmt.Println()

			return
		}

		buffer += line + "\n"

		arr, perr := p.Parse("console", buffer)
		if errors.Is(perr, parser.ErrIncomplete) {
			prompt = "  -> "

			continue
		}

		cli.AppendHistory(strings.ReplaceAll(strings.TrimSpace(buffer), "\n", " "))

		buffer = ""
		prompt = "ren> "

		if perr != nil {
			fmt.Fprintln(os.Stderr, perr.Error())

			continue
		}

		r, err := e.Evaluate(cell.New(block.New(arr)))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			continue
		}

		show(r)
	}
}

// show prints an evaluation result, staying quiet for the void left by
// expressions with invisible intent.
func show(r cell.T) {
	if r.IsIsotope() && void.Is(r.Heart()) {
		return
	}

	s := "== " + cell.Literal(r)
	if r.IsIsotope() {
		s += "  ; isotope"
	}

	fmt.Println(s)
}
