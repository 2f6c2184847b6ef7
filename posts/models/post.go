// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// CurrentVersion is stamped on every new post.
const CurrentVersion uint8 = 1

// Post is immutable once stored.
type Post struct {
	ID        string `json:"id" db:"id"`
	AuthorID  string `json:"authorId" db:"author_id"`
	Content   string `json:"content" db:"content"`
	Timestamp uint64 `json:"timestamp" db:"timestamp_ns"`
	Version   uint8  `json:"version" db:"version"`
}

// Clone returns a copy the caller may keep.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	AuthorID string `json:"authorId"`
	Content  string `json:"content"`
}
