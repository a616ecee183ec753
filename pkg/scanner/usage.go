// Package scanner decides which resource symbols are referenced by the
// source files of a tree.
package scanner

import "sync/atomic"

// Usage holds one used/unused flag per symbol. Flags only ever go from
// unused to used, so concurrent marking needs no lock.
type Usage struct {
	names     []string
	index     map[string]int
	flags     []atomic.Bool
	remaining atomic.Int64
}

// NewUsage creates a Usage with every name unused. Repeated names share a flag.
func NewUsage(names []string) *Usage {
	u := &Usage{index: make(map[string]int, len(names))}
	for _, name := range names {
		if _, ok := u.index[name]; ok {
			continue
		}
		u.index[name] = len(u.names)
		u.names = append(u.names, name)
	}
	u.flags = make([]atomic.Bool, len(u.names))
	u.remaining.Store(int64(len(u.names)))
	return u
}

// Mark flags name as used. It reports whether this call made the transition.
func (u *Usage) Mark(name string) bool {
	i, ok := u.index[name]
	if !ok {
		return false
	}
	if !u.flags[i].CompareAndSwap(false, true) {
		return false
	}
	u.remaining.Add(-1)
	return true
}

// IsUsed reports whether name has been marked used.
func (u *Usage) IsUsed(name string) bool {
	i, ok := u.index[name]
	return ok && u.flags[i].Load()
}

// Remaining returns how many symbols are still unused.
func (u *Usage) Remaining() int {
	return int(u.remaining.Load())
}

// AllUsed reports whether every symbol has been marked used.
func (u *Usage) AllUsed() bool {
	return u.Remaining() == 0
}

// Names returns the tracked names in insertion order.
func (u *Usage) Names() []string {
	return append([]string(nil), u.names...)
}

// Unused returns the names still unused, in insertion order.
func (u *Usage) Unused() []string {
	var unused []string
	for i, name := range u.names {
		if !u.flags[i].Load() {
			unused = append(unused, name)
		}
	}
	return unused
}
