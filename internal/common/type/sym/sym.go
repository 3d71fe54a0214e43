// Released under an MIT license. See LICENSE.

// Package sym provides ren's interned symbol type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/adapted"
)

// T (sym) is an interned name. Two syms interned by the same table with
// the same spelling are the same pointer, so equality is pointer equality.
type T struct {
	spelling string
}

type sym = T

// Table interns syms. Every runtime instance owns its own table; there
// is no process-wide interner.
type Table struct {
	mutex sync.RWMutex
	cache map[string]*sym
}

// NewTable creates a new symbol table.
func NewTable() *Table {
	return &Table{cache: map[string]*sym{}}
}

// New interns the spelling v and returns its sym.
func (t *Table) New(v string) *sym {
	t.mutex.RLock()
	p, ok := t.cache[v]
	t.mutex.RUnlock()

	if ok {
		return p
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if p, ok = t.cache[v]; ok {
		return p
	}

	p = &sym{spelling: v}
	t.cache[v] = p

	return p
}

// Size returns the number of interned syms.
func (t *Table) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return len(t.cache)
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return repr(s.spelling)
}

// String returns the spelling of the sym s.
func (s *sym) String() string {
	return s.spelling
}

func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 {
		return q
	}

	for _, r := range s {
		if r == ' ' {
			return q
		}
	}

	return s
}
