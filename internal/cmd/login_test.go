package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunInteractiveLoginRejectsEmptyEmail(t *testing.T) {
	var out bytes.Buffer
	err := RunInteractiveLogin(strings.NewReader("\n"), &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, out.String(), "email: ")
}

func TestRunInteractiveLoginRejectsEmptyPassword(t *testing.T) {
	var out bytes.Buffer
	err := RunInteractiveLogin(strings.NewReader("admin@showroom.test\n\n"), &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
	assert.Contains(t, out.String(), "password: ")
}

func TestLoginCmdHelpWorks(t *testing.T) {
	cmd := LoginCmd()
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	assert.NoError(t, err)
}
