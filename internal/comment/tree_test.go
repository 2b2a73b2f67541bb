package comment

import (
	"errors"
	"testing"
	"time"

	"github.com/VitaminP8/board/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(id, postID int64, parent *int64, at time.Time) *model.Comment {
	return &model.Comment{ID: id, PostID: postID, ParentCommentID: parent, CreatedAt: at, UpdatedAt: at}
}

func ptr(id int64) *int64 { return &id }

func indexChildren(index map[int64][]int64) ChildrenFunc {
	return func(parentID int64) ([]int64, error) {
		return index[parentID], nil
	}
}

func TestDescendants(t *testing.T) {
	t.Run("No replies gives empty result", func(t *testing.T) {
		ids, err := Descendants(1, indexChildren(map[int64][]int64{}))
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("Chain returns every level", func(t *testing.T) {
		// 1 <- 2 <- 3
		index := map[int64][]int64{1: {2}, 2: {3}}

		ids, err := Descendants(1, indexChildren(index))
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2, 3}, ids)
	})

	t.Run("Branching tree in pre-order", func(t *testing.T) {
		//      1
		//    /   \
		//   2     5
		//  / \     \
		// 3   4     6
		index := map[int64][]int64{1: {2, 5}, 2: {3, 4}, 5: {6}}

		ids, err := Descendants(1, indexChildren(index))
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 4, 5, 6}, ids)
	})

	t.Run("Starting from a middle node excludes ancestors and itself", func(t *testing.T) {
		index := map[int64][]int64{1: {2, 5}, 2: {3, 4}, 5: {6}}

		ids, err := Descendants(2, indexChildren(index))
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{3, 4}, ids)
	})

	t.Run("Deep chain does not exhaust the stack", func(t *testing.T) {
		const depth = 100000
		index := make(map[int64][]int64, depth)
		for i := int64(1); i < depth; i++ {
			index[i] = []int64{i + 1}
		}

		ids, err := Descendants(1, indexChildren(index))
		require.NoError(t, err)
		assert.Len(t, ids, depth-1)
		assert.Equal(t, int64(depth), ids[len(ids)-1])
	})

	t.Run("Cycle terminates", func(t *testing.T) {
		index := map[int64][]int64{1: {2}, 2: {3}, 3: {1, 2}}

		ids, err := Descendants(1, indexChildren(index))
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{2, 3}, ids)
	})

	t.Run("Lookup error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		children := func(parentID int64) ([]int64, error) {
			calls++
			if calls > 1 {
				return nil, boom
			}
			return []int64{2}, nil
		}

		_, err := Descendants(1, children)
		assert.ErrorIs(t, err, boom)
	})
}

func TestChildIndex(t *testing.T) {
	now := time.Now()
	comments := []*model.Comment{
		reply(4, 1, ptr(1), now),
		reply(1, 1, nil, now),
		reply(2, 1, ptr(1), now),
		reply(3, 1, ptr(2), now),
	}

	index := ChildIndex(comments)

	assert.Equal(t, []int64{2, 4}, index[1])
	assert.Equal(t, []int64{3}, index[2])
	assert.Empty(t, index[3])
}

func TestBuildForest(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Nested replies under their roots", func(t *testing.T) {
		comments := []*model.Comment{
			reply(3, 1, ptr(2), base.Add(3*time.Minute)),
			reply(1, 1, nil, base),
			reply(2, 1, ptr(1), base.Add(time.Minute)),
			reply(4, 1, nil, base.Add(2*time.Minute)),
			reply(5, 1, ptr(1), base.Add(4*time.Minute)),
		}

		forest := BuildForest(comments)

		require.Len(t, forest, 2)
		assert.Equal(t, int64(1), forest[0].Comment.ID)
		assert.Equal(t, int64(4), forest[1].Comment.ID)
		assert.Empty(t, forest[1].Replies)

		require.Len(t, forest[0].Replies, 2)
		assert.Equal(t, int64(2), forest[0].Replies[0].Comment.ID)
		assert.Equal(t, int64(5), forest[0].Replies[1].Comment.ID)

		require.Len(t, forest[0].Replies[0].Replies, 1)
		assert.Equal(t, int64(3), forest[0].Replies[0].Replies[0].Comment.ID)
	})

	t.Run("Same timestamp falls back to id", func(t *testing.T) {
		forest := BuildForest([]*model.Comment{
			reply(9, 1, nil, base),
			reply(7, 1, nil, base),
		})

		require.Len(t, forest, 2)
		assert.Equal(t, int64(7), forest[0].Comment.ID)
		assert.Equal(t, int64(9), forest[1].Comment.ID)
	})

	t.Run("Orphaned reply becomes a root", func(t *testing.T) {
		forest := BuildForest([]*model.Comment{reply(2, 1, ptr(42), base)})

		require.Len(t, forest, 1)
		assert.Equal(t, int64(2), forest[0].Comment.ID)
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, BuildForest(nil))
	})
}
