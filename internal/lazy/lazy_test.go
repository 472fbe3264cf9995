package lazy

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_GetRunsOnce(t *testing.T) {
	var v Value[int]
	calls := 0

	for i := 0; i < 3; i++ {
		got := v.Get(func() int {
			calls++
			return 42
		})
		assert.Equal(t, 42, got)
	}
	assert.Equal(t, 1, calls)
	assert.True(t, v.Loaded())
}

func TestValue_PanicLeavesCellEmpty(t *testing.T) {
	var v Value[string]

	require.PanicsWithValue(t, "boom", func() {
		v.Get(func() string { panic("boom") })
	})
	assert.False(t, v.Loaded())

	got := v.Get(func() string { return "ok" })
	assert.Equal(t, "ok", got)
	assert.True(t, v.Loaded())
}

func TestValue_ConcurrentGet(t *testing.T) {
	var v Value[int]
	var calls atomic.Int32

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Get(func() int {
				calls.Add(1)
				return 7
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 7, r)
	}
}
