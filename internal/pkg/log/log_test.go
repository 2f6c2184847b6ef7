// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() { SetOutput(nil) })
	return buf
}

func TestInfoWithContext_IncludesRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := WithRequestID(context.Background(), "req-42")
	InfoWithContext(ctx, "created post %s", "alice-1")

	assert.Contains(t, buf.String(), "[req_id=req-42] created post alice-1")
}

func TestInfoWithContext_NoRequestID(t *testing.T) {
	buf := captureOutput(t)

	InfoWithContext(context.Background(), "plain %d", 7)

	assert.Contains(t, buf.String(), "plain 7")
	assert.NotContains(t, buf.String(), "req_id")
}

func TestDebug_Toggle(t *testing.T) {
	buf := captureOutput(t)

	Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	t.Cleanup(func() { SetDebug(false) })
	Debug("shown")
	assert.Contains(t, buf.String(), "shown")

	DebugWithContext(WithRequestID(context.Background(), "req-7"), "edge %s", "a->b")
	assert.Contains(t, buf.String(), "[req_id=req-7] edge a->b")
}

func TestRequestID_NilContext(t *testing.T) {
	//nolint:staticcheck
	assert.Equal(t, "", RequestID(nil))
}
