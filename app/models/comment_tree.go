package models

// CommentNode is a comment with its nested replies, used for rendering a
// blog's comment list as a tree. Trees are rebuilt fresh on each fetch and
// never persisted.
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}

// BuildCommentTree converts a flat, insertion-ordered comment list into a
// forest of reply trees. Children are appended in insertion order, so a
// single pass over the wrapped nodes suffices even when a reply precedes its
// parent in the input. A comment whose parent id does not resolve within the
// list (including a parent deleted by an admin) is silently promoted to a
// root rather than dropped.
func BuildCommentTree(comments []Comment) []*CommentNode {
	nodes := make(map[string]*CommentNode, len(comments))
	ordered := make([]*CommentNode, 0, len(comments))
	for _, comment := range comments {
		node := &CommentNode{Comment: comment, Replies: []*CommentNode{}}
		nodes[comment.ID] = node
		ordered = append(ordered, node)
	}

	roots := make([]*CommentNode, 0, len(comments))
	for _, node := range ordered {
		if node.Parent != "" {
			if parent, ok := nodes[node.Parent]; ok && parent != node {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
