package src

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadlessStreamsProgress(t *testing.T) {
	cfg := Config{OutputDir: t.TempDir()}
	client := &scriptedClient{err: errors.New("server down")}

	var out bytes.Buffer
	result, err := RunHeadless(context.Background(), cfg, client, "password generator", &out)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Dir)
	assert.Contains(t, out.String(), "Phase 1")
	assert.Contains(t, out.String(), "Success rate: 100%")
}

func TestRunHeadlessEmptyRequest(t *testing.T) {
	var out bytes.Buffer
	_, err := RunHeadless(context.Background(), Config{OutputDir: t.TempDir()}, &scriptedClient{}, "", &out)
	assert.ErrorIs(t, err, ErrEmptyRequest)
}
