package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRunHash_Argument(t *testing.T) {
	hashCost = bcrypt.MinCost

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runHash(cmd, []string{"Paris"})
	require.NoError(t, err)

	hash := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), "got %q", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Paris")))
}

func TestRunHash_StdinLine(t *testing.T) {
	hashCost = bcrypt.MinCost

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("Rome\n"))

	err := runHash(cmd, []string{})
	require.NoError(t, err)

	hash := strings.TrimSpace(buf.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Rome")))
}

func TestRunHash_CostOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	hashCost = bcrypt.MinCost - 1
	assert.Error(t, runHash(cmd, []string{"x"}))

	hashCost = bcrypt.MaxCost + 1
	assert.Error(t, runHash(cmd, []string{"x"}))
}
