// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"strings"

	"github.com/omkarjainak/defisocial/posts/models"
)

func ValidatePostID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("post id is required")
	}
	return nil
}

// ValidateCreatePostRequest only checks shape; whether the author exists is
// decided by the users service.
func ValidateCreatePostRequest(req *models.CreatePostRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if strings.TrimSpace(req.AuthorID) == "" {
		return fmt.Errorf("authorId is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
