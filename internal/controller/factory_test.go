package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &JSONUI{}, NewUI(cmd, "json", false))
	assert.IsType(t, &JSONUI{}, NewUI(cmd, "json", true))
	assert.IsType(t, &TUI{}, NewUI(cmd, "text", true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, "text", false))
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
