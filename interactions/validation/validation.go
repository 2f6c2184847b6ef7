// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"strings"

	"github.com/omkarjainak/defisocial/interactions/models"
)

func ValidatePostID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("post id is required")
	}
	return nil
}

func ValidateLike(userID, postID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}
	return ValidatePostID(postID)
}

func ValidateAddCommentRequest(req *models.AddCommentRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := ValidateLike(req.UserID, req.PostID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}
