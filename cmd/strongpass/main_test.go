package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(args ...string) (stdout, stderr string, err error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_Memorable(t *testing.T) {
	stdout, _, err := runCommand("-t", "memorable", "-l", "5")
	require.NoError(t, err)

	password := strings.TrimSpace(stdout)
	assert.Len(t, strings.Split(password, " "), 5)
}

func TestRun_RandomDefaultLength(t *testing.T) {
	stdout, _, err := runCommand("-t", "random")
	require.NoError(t, err)

	assert.Len(t, strings.TrimSpace(stdout), 12)
}

func TestRun_MissingType(t *testing.T) {
	_, _, err := runCommand("-l", "5")
	assert.Error(t, err)
}

func TestRun_UnknownType(t *testing.T) {
	_, _, err := runCommand("-t", "pronounceable")
	assert.Error(t, err)
}

func TestRun_InvalidLength(t *testing.T) {
	_, _, err := runCommand("-t", "random", "-l", "0")
	assert.Error(t, err)
}

func TestRun_ShortRandomWarnsOnStderr(t *testing.T) {
	stdout, stderr, err := runCommand("-t", "random", "-l", "3")
	require.NoError(t, err)

	assert.Len(t, strings.TrimSpace(stdout), 3)
	assert.Contains(t, stderr, "warning")
}

func TestRun_StrengthReport(t *testing.T) {
	stdout, _, err := runCommand("-t", "memorable", "-l", "5", "--strength")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Score: ")
	assert.Contains(t, stdout, "Crack time: ")
}

func TestRun_ExternalWordlist(t *testing.T) {
	_, _, err := runCommand("-t", "memorable", "--wordlist", "no-such-file.txt")
	assert.Error(t, err)
}
