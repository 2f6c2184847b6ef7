// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// Comment is append-only; comments on a post are kept in creation order.
type Comment struct {
	ID        string `json:"id" db:"id"`
	PostID    string `json:"postId" db:"post_id"`
	AuthorID  string `json:"authorId" db:"author_id"`
	Content   string `json:"content" db:"content"`
	Timestamp uint64 `json:"timestamp" db:"timestamp_ns"`
}

func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// AddCommentRequest carries PostID from the route and the rest from the body.
type AddCommentRequest struct {
	UserID  string `json:"userId"`
	PostID  string `json:"-"`
	Content string `json:"content"`
}
