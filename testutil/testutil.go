// Package testutil provides testing helpers for enumeration types.
// It can be imported from any package's tests.
package testutil

import (
	"slices"
	"testing"

	"github.com/broady/enumeration"
	"github.com/stretchr/testify/assert"
)

// CheckType asserts the properties every enumeration type should have:
//
//   - every member is found by its own key, and Has agrees with Get
//   - members are in non-decreasing key order
//   - Len, Keys, Values and Entries agree with each other
//   - no two members share a key
//
// Failures are reported through t. CheckType returns true if all checks
// passed.
func CheckType[E enumeration.Member[K], K enumeration.Key](t testing.TB, typ *enumeration.Type[E, K]) bool {
	t.Helper()
	name := typ.Name()
	ok := true

	keys := slices.Collect(typ.Keys())
	values := slices.Collect(typ.Values())
	ok = assert.Len(t, keys, typ.Len(), "%s: Keys and Len disagree", name) && ok
	ok = assert.Len(t, values, typ.Len(), "%s: Values and Len disagree", name) && ok

	n := 0
	for k, v := range typ.Entries() {
		ok = assert.Equal(t, v.Key(), k, "%s: entry %d key does not match its member", name, n) && ok
		n++
	}
	ok = assert.Equal(t, typ.Len(), n, "%s: Entries and Len disagree", name) && ok

	for i, v := range values {
		key := v.Key()
		got, found := typ.Get(key)
		ok = assert.True(t, found, "%s: member %v not found by its key", name, key) && ok
		ok = assert.Equal(t, found, typ.Has(key), "%s: Has(%v) disagrees with Get", name, key) && ok
		if found {
			ok = assert.True(t, got.Comparer().Eq(got.Key(), key), "%s: Get(%v) returned key %v", name, key, got.Key()) && ok
		}
		if i > 0 {
			prev := values[i-1]
			ok = assert.True(t, prev.Comparer().Lte(prev.Key(), key), "%s: keys %v and %v out of order", name, prev.Key(), key) && ok
		}
		if i < len(keys) {
			ok = assert.Equal(t, keys[i], key, "%s: Keys and Values disagree at %d", name, i) && ok
		}
	}

	ok = assert.NoError(t, typ.Check(), "%s: duplicate keys", name) && ok
	return ok
}

// AssertKeys asserts that typ's keys are exactly want, in order.
func AssertKeys[E enumeration.Member[K], K enumeration.Key](t testing.TB, typ *enumeration.Type[E, K], want ...K) bool {
	t.Helper()
	return assert.Equal(t, want, slices.Collect(typ.Keys()), "%s: unexpected keys", typ.Name())
}

// AssertMissing asserts that no member of typ has any of keys.
func AssertMissing[E enumeration.Member[K], K enumeration.Key](t testing.TB, typ *enumeration.Type[E, K], keys ...K) bool {
	t.Helper()
	ok := true
	for _, k := range keys {
		ok = assert.False(t, typ.Has(k), "%s: unexpected member with key %v", typ.Name(), k) && ok
	}
	return ok
}
