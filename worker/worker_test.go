package worker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseJobTick(t *testing.T) {
	runs := 0
	job := &BaseJob{
		OnWork: func() error {
			runs++
			return errors.New("send failed")
		},
	}

	// a failing pass never sticks the running flag
	job.Tick()
	job.Tick()
	assert.Equal(t, 2, runs)
	assert.False(t, job.IsRunning)

	// a pass already in flight is skipped
	job.IsRunning = true
	job.Tick()
	assert.Equal(t, 2, runs)
}
