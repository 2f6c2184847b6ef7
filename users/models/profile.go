// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import "github.com/omkarjainak/defisocial/shared/interfaces"

// UserProfile is keyed by ID. Username is unique across profiles at registration time.
type UserProfile struct {
	ID        string  `json:"id" db:"id"`
	Username  string  `json:"username" db:"username"`
	Name      string  `json:"name" db:"name"`
	Bio       string  `json:"bio" db:"bio"`
	AvatarURL *string `json:"avatarUrl,omitempty" db:"avatar_url"`
	CoverURL  *string `json:"coverUrl,omitempty" db:"cover_url"`
}

// Clone returns a deep copy so stored profiles never alias caller memory.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.AvatarURL = cloneString(p.AvatarURL)
	c.CoverURL = cloneString(p.CoverURL)
	return &c
}

// Snapshot converts the profile to the cross-service view.
func (p *UserProfile) Snapshot() *interfaces.UserSnapshot {
	if p == nil {
		return nil
	}
	return &interfaces.UserSnapshot{
		ID:        p.ID,
		Username:  p.Username,
		Name:      p.Name,
		Bio:       p.Bio,
		AvatarURL: cloneString(p.AvatarURL),
		CoverURL:  cloneString(p.CoverURL),
	}
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CoverURL  *string `json:"coverUrl,omitempty"`
}

// ToProfile builds the profile a registration stores.
func (r *RegisterUserRequest) ToProfile() *UserProfile {
	return &UserProfile{
		ID:        r.ID,
		Username:  r.Username,
		Name:      r.Name,
		Bio:       r.Bio,
		AvatarURL: cloneString(r.AvatarURL),
		CoverURL:  cloneString(r.CoverURL),
	}
}

// UpdateProfileRequest replaces every mutable field; a nil URL clears it.
type UpdateProfileRequest struct {
	Name      string  `json:"name"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	CoverURL  *string `json:"coverUrl,omitempty"`
}

// Apply overwrites the mutable fields of p. ID and Username are untouched.
func (r *UpdateProfileRequest) Apply(p *UserProfile) {
	p.Name = r.Name
	p.Bio = r.Bio
	p.AvatarURL = cloneString(r.AvatarURL)
	p.CoverURL = cloneString(r.CoverURL)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
