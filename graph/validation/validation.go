// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"fmt"
	"strings"
)

func ValidateUserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

// ValidateEdge checks both ends of a follow edge. Following yourself is allowed.
func ValidateEdge(follower, followee string) error {
	if strings.TrimSpace(follower) == "" {
		return fmt.Errorf("follower id is required")
	}
	if strings.TrimSpace(followee) == "" {
		return fmt.Errorf("followee id is required")
	}
	return nil
}
