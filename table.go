package enumeration

import (
	"iter"
	"reflect"
	"slices"
)

// Entry is a key and the member it identifies.
type Entry[E Member[K], K Key] struct {
	Key   K
	Value E
}

// Table is the ordered, read-only key to member mapping of an enumeration
// type. Entries are sorted ascending by key under the members' comparer;
// members with equal keys keep their declaration order.
type Table[E Member[K], K Key] struct {
	entries []Entry[E, K]
}

// collect builds the table for bindings: nil bindings are skipped, deferred
// handles are resolved, and anything that is not an E is discarded.
func collect[E Member[K], K Key](bindings []Member[K]) *Table[E, K] {
	members := make([]E, 0, len(bindings))
	for _, b := range bindings {
		if isNil(b) {
			continue
		}
		// Handles are checked first: when E is an interface the handle
		// itself may satisfy it.
		if d, ok := b.(deferred); ok {
			if m, ok := d.unwrap().(E); ok && !isNil(m) {
				members = append(members, m)
			}
			continue
		}
		if m, ok := b.(E); ok {
			members = append(members, m)
		}
	}

	slices.SortStableFunc(members, func(x, y E) int {
		return Compare(x.Comparer(), x.Key(), y.Key())
	})

	entries := make([]Entry[E, K], len(members))
	for i, m := range members {
		entries[i] = Entry[E, K]{Key: m.Key(), Value: m}
	}
	return &Table[E, K]{entries: entries}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Len returns the number of members.
func (t *Table[E, K]) Len() int {
	return len(t.entries)
}

// At returns the i'th entry in key order. It panics if i is out of range.
func (t *Table[E, K]) At(i int) Entry[E, K] {
	return t.entries[i]
}

// Get returns the member whose key equals key under the comparer.
// If several members share the key, the last one in table order wins.
func (t *Table[E, K]) Get(key K) (E, bool) {
	i := t.search(key)
	if i < 0 {
		var zero E
		return zero, false
	}
	return t.entries[i].Value, true
}

// Has reports whether a member has the given key.
func (t *Table[E, K]) Has(key K) bool {
	return t.search(key) >= 0
}

// search returns the index of the last entry equal to key, or -1.
func (t *Table[E, K]) search(key K) int {
	i, found := slices.BinarySearchFunc(t.entries, key, func(e Entry[E, K], k K) int {
		return Compare(e.Value.Comparer(), e.Key, k)
	})
	if !found {
		return -1
	}
	for i+1 < len(t.entries) {
		next := t.entries[i+1]
		if !next.Value.Comparer().Eq(next.Key, key) {
			break
		}
		i++
	}
	return i
}

// Keys returns the keys in order.
func (t *Table[E, K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range t.entries {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values returns the members in key order.
func (t *Table[E, K]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range t.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Entries returns key, member pairs in key order.
func (t *Table[E, K]) Entries() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for _, e := range t.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// All is the default iteration over the table. It is the same as Values.
func (t *Table[E, K]) All() iter.Seq[E] {
	return t.Values()
}

// duplicates returns the runs of two or more adjacent entries with equal
// keys.
func (t *Table[E, K]) duplicates() [][]Entry[E, K] {
	var runs [][]Entry[E, K]
	for i := 0; i < len(t.entries); {
		j := i + 1
		first := t.entries[i]
		for j < len(t.entries) && first.Value.Comparer().Eq(first.Key, t.entries[j].Key) {
			j++
		}
		if j-i > 1 {
			runs = append(runs, t.entries[i:j:j])
		}
		i = j
	}
	return runs
}
