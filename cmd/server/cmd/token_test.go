package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenCommandDefaultIdentity(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"token"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, buf.String(), "Bearer local-dev")
	require.Contains(t, buf.String(), "curl -H 'Authorization: Bearer local-dev'")
}

func TestTokenCommandNamedIdentity(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"token", "u1"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, buf.String(), "Bearer local-u1")
}
