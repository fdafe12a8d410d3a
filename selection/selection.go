// Package selection exposes row selection owned by the host application
// to a data grid.
//
// The grid never stores or mutates selection state. It reads membership
// from a Set and reports toggles through a callback; the host decides what
// a toggle means.
package selection

import (
	"strconv"
	"sync"
)

// Key uniquely identifies a row.
type Key string

// NoKey is returned by rows that do not have a key of their own. Such rows
// are identified by their index instead.
const NoKey = Key("")

// Set is a read-only view of the selected row keys.
type Set interface {
	Has(key Key) bool
	Len() int
}

// Facade connects a grid of rows of type T to externally owned selection
// state.
type Facade[T any] struct {
	// Selected is the set of selected keys. A nil Selected selects nothing.
	Selected Set
	// OnChange is invoked when the user toggles a row. selected is the
	// state the user asked for.
	OnChange func(key Key, selected bool)
	// Key returns the key of a row. If Key is nil or returns NoKey, the
	// row index is used.
	Key func(row T, index int) Key
}

// KeyOf returns the key identifying row at index.
func (f *Facade[T]) KeyOf(row T, index int) Key {
	if f.Key != nil {
		if k := f.Key(row, index); k != NoKey {
			return k
		}
	}
	return Key(strconv.Itoa(index))
}

// Checked reports whether row at index is selected.
func (f *Facade[T]) Checked(row T, index int) bool {
	if f.Selected == nil {
		return false
	}
	return f.Selected.Has(f.KeyOf(row, index))
}

// Toggle asks the host to flip the selection of row at index.
func (f *Facade[T]) Toggle(row T, index int) {
	if f.OnChange == nil {
		return
	}
	f.OnChange(f.KeyOf(row, index), !f.Checked(row, index))
}

// Keys is an insertion-ordered set of keys safe for concurrent use. Hosts
// may use it as the Set behind a Facade.
type Keys struct {
	mu    sync.RWMutex
	order []Key
	index map[Key]int
}

// NewKeys returns a set holding keys in order. Duplicates are ignored.
func NewKeys(keys ...Key) *Keys {
	k := &Keys{index: make(map[Key]int, len(keys))}
	for _, key := range keys {
		k.Add(key)
	}
	return k
}

// Has reports whether key is in the set.
func (k *Keys) Has(key Key) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok := k.index[key]
	return ok
}

// Len returns the number of keys.
func (k *Keys) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.order)
}

// Add appends key if it is not already present.
func (k *Keys) Add(key Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.index == nil {
		k.index = make(map[Key]int)
	}
	if _, ok := k.index[key]; ok {
		return
	}
	k.index[key] = len(k.order)
	k.order = append(k.order, key)
}

// Remove deletes key, preserving the order of the others.
func (k *Keys) Remove(key Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	i, ok := k.index[key]
	if !ok {
		return
	}
	delete(k.index, key)
	k.order = append(k.order[:i], k.order[i+1:]...)
	for j := i; j < len(k.order); j++ {
		k.index[k.order[j]] = j
	}
}

// Set adds or removes key. It matches the signature of Facade.OnChange.
func (k *Keys) Set(key Key, selected bool) {
	if selected {
		k.Add(key)
		return
	}
	k.Remove(key)
}

// Slice returns a copy of the keys in insertion order.
func (k *Keys) Slice() []Key {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]Key, len(k.order))
	copy(out, k.order)
	return out
}
