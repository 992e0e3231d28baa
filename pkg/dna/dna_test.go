package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeterministic(t *testing.T) {
	a := New([]byte{1, 2, 3}, "alice", "m-1")
	b := New([]byte{1, 2, 3}, "alice", "m-1")
	assert.Equal(t, a, b)
	assert.Len(t, a.ID(), 32)
}

func TestNewVaries(t *testing.T) {
	a := New([]byte{1, 2, 3}, "alice", "m-1")

	assert.NotEqual(t, a, New([]byte{1, 2, 4}, "alice", "m-1"))
	assert.NotEqual(t, a, New([]byte{1, 2, 3}, "bob", "m-1"))
	assert.NotEqual(t, a, New([]byte{1, 2, 3}, "alice", "m-2"))
}
