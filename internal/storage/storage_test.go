package storage

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Run("Starts at one and increases", func(t *testing.T) {
		var seq Sequence
		assert.Equal(t, int64(1), seq.Next())
		assert.Equal(t, int64(2), seq.Next())
		assert.Equal(t, int64(3), seq.Next())
	})

	t.Run("Concurrent callers never see the same value", func(t *testing.T) {
		var seq Sequence
		const n = 500

		ids := make([]int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				ids[idx] = seq.Next()
			}(i)
		}
		wg.Wait()

		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for i, id := range ids {
			require.Equal(t, int64(i+1), id)
		}
	})
}

func TestNotFoundError(t *testing.T) {
	t.Run("Message names entity and id", func(t *testing.T) {
		err := NotFound("comment", 999)
		assert.Equal(t, "comment with ID 999 not found", err.Error())
	})

	t.Run("Lookup by other field", func(t *testing.T) {
		err := NotFoundBy("member", "login ID", "alice")
		assert.Equal(t, "member with login ID alice not found", err.Error())
	})

	t.Run("Matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("delete post: %w", NotFound("post", 7))
		assert.True(t, errors.Is(err, ErrNotFound))

		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, int64(7), nf.Value)
	})
}
