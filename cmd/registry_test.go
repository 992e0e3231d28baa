package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountFlagMissing(t *testing.T) {
	var out bytes.Buffer
	kittiesCmd.SetErr(&out)

	assert.NotPanics(t, func() {
		kittiesCmd.Run(kittiesCmd, nil)
	})
	assert.Contains(t, out.String(), "--account required")
}
