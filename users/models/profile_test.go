// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserProfile_CloneIsDeep(t *testing.T) {
	p := &UserProfile{ID: "alice", Username: "alice1", AvatarURL: strPtr("https://a/1.png")}
	c := p.Clone()

	*c.AvatarURL = "changed"
	c.Name = "Other"

	assert.Equal(t, "https://a/1.png", *p.AvatarURL)
	assert.Empty(t, p.Name)
	assert.Nil(t, (*UserProfile)(nil).Clone())
}

func TestUpdateProfileRequest_ApplyKeepsIdentity(t *testing.T) {
	p := &UserProfile{ID: "alice", Username: "alice1", Name: "Alice", CoverURL: strPtr("c")}
	req := &UpdateProfileRequest{Name: "Alice B", Bio: "hello", AvatarURL: strPtr("a")}

	req.Apply(p)

	assert.Equal(t, "alice", p.ID)
	assert.Equal(t, "alice1", p.Username)
	assert.Equal(t, "Alice B", p.Name)
	assert.Equal(t, "hello", p.Bio)
	assert.Equal(t, "a", *p.AvatarURL)
	assert.Nil(t, p.CoverURL, "a missing URL clears the field")
}

func TestUserProfile_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(&UserProfile{ID: "a", Username: "u", AvatarURL: strPtr("x")})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "x", raw["avatarUrl"])
	_, hasCover := raw["coverUrl"]
	assert.False(t, hasCover)
}

func TestUserProfile_Snapshot(t *testing.T) {
	p := &UserProfile{ID: "a", Username: "u", Name: "n", Bio: "b", CoverURL: strPtr("c")}
	s := p.Snapshot()

	assert.Equal(t, "a", s.ID)
	assert.Equal(t, "u", s.Username)
	assert.Equal(t, "c", *s.CoverURL)
	assert.Nil(t, (*UserProfile)(nil).Snapshot())
}
