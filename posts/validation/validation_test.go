// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omkarjainak/defisocial/posts/models"
)

func TestValidateCreatePostRequest(t *testing.T) {
	assert.Error(t, ValidateCreatePostRequest(nil))
	assert.Error(t, ValidateCreatePostRequest(&models.CreatePostRequest{Content: "hi"}))
	assert.Error(t, ValidateCreatePostRequest(&models.CreatePostRequest{AuthorID: "alice", Content: "  "}))
	assert.NoError(t, ValidateCreatePostRequest(&models.CreatePostRequest{AuthorID: "alice", Content: "hi"}))
}

func TestValidatePostID(t *testing.T) {
	assert.Error(t, ValidatePostID(""))
	assert.NoError(t, ValidatePostID("alice-1"))
}
