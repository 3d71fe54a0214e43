// Released under an MIT license. See LICENSE.

// Package parser assembles tokens into the arrays of cells the
// evaluator runs. Parsing is iterative: open blocks and groups are a
// stack of partial arrays, never recursion.
package parser

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/arena"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/array"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/cell"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/token"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/blank"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/block"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/failure"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/hole"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/num"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/seq"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/sym"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/text"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/type/word"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/reader/lexer"
)

// ErrIncomplete reports source that ends inside an open block, group,
// or pending quote. An interactive caller responds by reading more.
var ErrIncomplete = errors.New("incomplete input")

// T assembles one source buffer into an array of cells.
type T struct {
	syms  *sym.Table
	arena *arena.T
}

type parser = T

// New creates a parser allocating through the symbol table st and the
// arena ar.
func New(st *sym.Table, ar *arena.T) *parser {
	return &parser{syms: st, arena: ar}
}

// open is one unfinished container.
type open struct {
	cells []cell.T
	group bool

	// Prefix state captured when the container opened.
	quotes int
	quasi  bool
}

// Parse scans the complete source buffer text and returns its cells.
func (p *parser) Parse(label, source string) (r *array.T, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		if e, ok := v.(*failure.T); ok {
			err = e

			return
		}

		panic(v)
	}()

	l := lexer.New(label)
	l.Scan(source)

	stack := []*open{{}}

	quotes := 0
	quasi := false

	add := func(c cell.T) {
		if quasi {
			c = cell.Quasi(c.Heart())
			quasi = false
		}

		if quotes > 0 {
			c = c.Quotify(quotes)
			quotes = 0
		}

		top := stack[len(stack)-1]
		top.cells = append(top.cells, c)
	}

	for t := l.Token(); t != nil; t = l.Token() {
		switch t.Class() {
		case '\'':
			quotes++

		case token.Quasi:
			add(p.quasiform(t.Value()))

		case '[', '(':
			stack = append(stack, &open{
				group:  t.Class() == '(',
				quotes: quotes,
				quasi:  quasi,
			})
			quotes, quasi = 0, false

		case ']', ')':
			if len(stack) < 2 {
				failure.Raise(failure.Sequence, "%s: unexpected %c", t.Source().String(), t.Class())
			}

			top := stack[len(stack)-1]
			if top.group != (t.Class() == ')') {
				failure.Raise(failure.Sequence, "%s: mismatched %c", t.Source().String(), t.Class())
			}

			stack = stack[:len(stack)-1]

			arr := p.arena.Array(top.cells...)

			b := block.New(arr)
			if top.group {
				b = block.NewGroup(arr)
			}

			quotes, quasi = top.quotes, top.quasi
			add(cell.New(b))

		case token.Number:
			add(cell.New(num.New(t.Value())))

		case token.Text:
			add(cell.New(p.text(t)))

		case token.Sequence:
			add(cell.New(p.sequence(t)))

		case token.Word:
			add(p.word(t.Value()))

		case token.Error:
			failure.Raise(failure.Sequence, "%s: %s", t.Source().String(), t.Value())

		default:
			failure.Raise(failure.Sequence, "%s: unexpected %s", t.Source().String(), t.String())
		}
	}

	if len(stack) > 1 || quotes > 0 || quasi || l.Text() != "" {
		// Inside an open container, a pending prefix, or a token cut
		// off mid-scan, like an unterminated text.
		return nil, ErrIncomplete
	}

	return p.arena.Array(stack[0].cells...), nil
}

// quasiform builds the cell a quasi token denotes: the quasi blank for
// a bare tilde, otherwise the quasi form of the spelled value.
func (p *parser) quasiform(v string) cell.T {
	if v == "" {
		return cell.Quasi(blank.Blank)
	}

	if v[0] >= '0' && v[0] <= '9' || v[0] == '-' || v[0] == '+' {
		return cell.Quasi(num.New(v))
	}

	return cell.Quasi(word.New(p.syms.New(v)))
}

// text unescapes the contents of a text token.
func (p *parser) text(t *token.T) *text.T {
	s, err := adapted.ActualBytes(t.Value())
	if err != nil {
		failure.Raise(failure.Sequence, "%s: bad escape in text", t.Source().String())
	}

	return text.To(text.New(s))
}

// sequence splits a dotted atom into its steps.
func (p *parser) sequence(t *token.T) *seq.T {
	parts := strings.Split(t.Value(), ".")

	steps := make([]cell.T, len(parts))

	for i, s := range parts {
		if s == "" {
			failure.Raise(failure.Sequence, "%s: a sequence step cannot be empty", t.Source().String())
		}

		if s[0] >= '0' && s[0] <= '9' {
			steps[i] = cell.New(num.New(s))
		} else {
			steps[i] = cell.New(word.New(p.syms.New(s)))
		}
	}

	return seq.New(steps...)
}

// word builds the cell a word atom denotes, honoring the set and get
// prefixes and the blank and blackhole spellings.
func (p *parser) word(v string) cell.T {
	switch v {
	case "_":
		return cell.New(blank.Blank)
	case "#":
		return cell.New(hole.Hole)
	}

	if strings.HasSuffix(v, ":") {
		return cell.New(word.SetWord(p.syms.New(v[:len(v)-1])))
	}

	if strings.HasPrefix(v, ":") {
		return cell.New(word.GetWord(p.syms.New(v[1:])))
	}

	return cell.New(word.New(p.syms.New(v)))
}
