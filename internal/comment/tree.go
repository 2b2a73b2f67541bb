package comment

import (
	"sort"

	"github.com/VitaminP8/board/internal/model"
)

// ChildrenFunc returns the ids of the direct replies to a comment.
type ChildrenFunc func(parentID int64) ([]int64, error)

// Descendants walks the reply tree below parentID and collects every comment
// id in depth-first pre-order. parentID itself is not included.
//
// The walk uses an explicit stack, so chain depth is bounded only by memory.
// A comment already collected is never visited again, which keeps a
// malformed (cyclic) parent chain from looping forever.
func Descendants(parentID int64, children ChildrenFunc) ([]int64, error) {
	visited := map[int64]bool{parentID: true}
	descendants := []int64{}

	stack, err := pushChildren(nil, parentID, children)
	if err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] {
			continue
		}
		visited[id] = true
		descendants = append(descendants, id)

		stack, err = pushChildren(stack, id, children)
		if err != nil {
			return nil, err
		}
	}

	return descendants, nil
}

// pushChildren pushes in reverse so the first child is popped first.
func pushChildren(stack []int64, parentID int64, children ChildrenFunc) ([]int64, error) {
	ids, err := children(parentID)
	if err != nil {
		return nil, err
	}
	for i := len(ids) - 1; i >= 0; i-- {
		stack = append(stack, ids[i])
	}
	return stack, nil
}

// ChildIndex maps each parent comment id to its direct replies, ordered by id.
func ChildIndex(comments []*model.Comment) map[int64][]int64 {
	index := make(map[int64][]int64)
	for _, c := range comments {
		if c.ParentCommentID != nil {
			index[*c.ParentCommentID] = append(index[*c.ParentCommentID], c.ID)
		}
	}
	for _, ids := range index {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	return index
}

// Node is one comment of a post together with its replies.
type Node struct {
	Comment *model.Comment `json:"comment"`
	Replies []*Node        `json:"replies"`
}

// BuildForest arranges a post's comments into reply trees. Roots and the
// replies at every level are ordered by creation time, then id. A reply whose
// parent is not among comments is treated as a root.
func BuildForest(comments []*model.Comment) []*Node {
	sorted := make([]*model.Comment, len(comments))
	copy(sorted, comments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	nodes := make(map[int64]*Node, len(sorted))
	for _, c := range sorted {
		nodes[c.ID] = &Node{Comment: c, Replies: []*Node{}}
	}

	roots := []*Node{}
	for _, c := range sorted {
		node := nodes[c.ID]
		if c.ParentCommentID != nil && *c.ParentCommentID != c.ID {
			if parent, ok := nodes[*c.ParentCommentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}
