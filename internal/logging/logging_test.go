package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	New(false, &buf).Debug("hidden")
	assert.Empty(t, buf.String())

	New(true, &buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewNoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer

	New(false, &buf).Error("failed", "err", errors.New("boom"))

	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "\x1b[")
}
