// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"strings"

	"github.com/omkarjainak/defisocial/users/models"
)

// ValidateUserID rejects empty or whitespace-only ids.
func ValidateUserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

func ValidateRegisterUserRequest(req *models.RegisterUserRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := ValidateUserID(req.ID); err != nil {
		return err
	}
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

func ValidateUpdateProfileRequest(req *models.UpdateProfileRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	return nil
}
