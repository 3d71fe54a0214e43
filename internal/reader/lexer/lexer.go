// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the ren language.
//
// The ren lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/loc"
	"github.com/Gun420SombraSoyournMercyH18002/ren-c-sub001/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

type lexer = T

// New creates a new lexer. Label can be a file name or other identifier.
func New(label string) *lexer {
	l := &lexer{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning. If a buffer is
// currently being scanned, the new buffer will be appended to the list
// of buffers waiting to be scanned.
func (l *lexer) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text returns the text corresponding to the current token.
func (l *lexer) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *lexer) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*lexer) action

const eof = -1

func (l *lexer) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *lexer) emit(c token.Class, v string) {
	l.tokens <- token.New(c, v, &loc.T{
		Char: l.source.Char,
		Line: l.source.Line,
		Name: l.source.Name,
	})
	l.skip()
}

func (l *lexer) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *lexer) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *lexer) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *lexer) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// Lexer states.

func skipWhitespace(l *lexer) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil

		case ' ', '\t', '\r', '\n':
			l.accept(r, w)
			l.skip()

		case ';':
			l.accept(r, w)

			return skipComment

		case '[', ']', '(', ')', '\'':
			l.accept(r, w)
			l.emit(r, l.Text())

		case '"':
			l.accept(r, w)

			return scanText

		case '~':
			l.accept(r, w)

			return scanQuasi

		default:
			return scanAtom
		}
	}
}

func skipComment(l *lexer) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil

		case '\n':
			return skipWhitespace
		}

		l.accept(r, w)
		l.skip()
	}
}

func scanText(l *lexer) action {
	for {
		c := l.next()

		switch c {
		case eof:
			return nil

		case '"':
			s := l.Text()
			l.emit(token.Text, s[1:len(s)-1])

			return skipWhitespace

		case '\\':
			if c = l.next(); c == eof {
				return nil
			}
		}
	}
}

func scanQuasi(l *lexer) action {
	for {
		r, w := l.peek()

		switch {
		case r == '~':
			l.accept(r, w)
			s := l.Text()
			l.emit(token.Quasi, s[1:len(s)-1])

			return skipWhitespace

		case r == eof, delimiter(r):
			s := l.Text()
			if s != "~" {
				l.emit(token.Error, "unterminated quasiform "+s)
			} else {
				// A lone tilde is the quasi blank.
				l.emit(token.Quasi, "")
			}

			if r == eof {
				return nil
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanAtom(l *lexer) action {
	for {
		r, w := l.peek()

		if r == eof || delimiter(r) || r == '~' {
			s := l.Text()
			l.emit(classify(s), s)

			if r == eof {
				return nil
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

// delimiter returns true for the runes that always end an atom.
func delimiter(r token.Class) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '[', ']', '(', ')', '"', ';', '\'':
		return true
	}

	return false
}

// classify decides whether an atom spells a number, a dotted
// sequence, or a word.
func classify(s string) token.Class {
	if s == "" {
		return token.Error
	}

	if numeric(s) {
		return token.Number
	}

	body := strings.TrimPrefix(strings.TrimSuffix(s, ":"), ":")
	if strings.Contains(body, ".") {
		return token.Sequence
	}

	return token.Word
}

// numeric returns true if s spells a number: an optional sign, digits,
// and at most one dot or slash.
func numeric(s string) bool {
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}

	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}

	marks := 0

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '/':
			marks++
			if marks > 1 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
