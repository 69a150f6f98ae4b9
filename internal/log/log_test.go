package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetVerbose(false)

	SetVerbose(false)
	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetVerbose(true)
	Debugf("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
}

func TestInfoWritesKeyvals(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Info("generated", "file", "primary-light.json")
	assert.Contains(t, buf.String(), "generated")
	assert.Contains(t, buf.String(), "primary-light.json")
}
