package worker

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Worker long running job
type Worker interface {
	Run(ctx context.Context) error
}

type OnWork func() error

// BaseJob cron driven job base. Tick skips over a still running pass.
type BaseJob struct {
	Cron      *cron.Cron
	IsRunning bool
	OnWork    OnWork
}

// Run start the cron and block until ctx is done
func (job *BaseJob) Run(ctx context.Context) error {
	job.Cron.Start()
	<-ctx.Done()
	job.Cron.Stop()
	return ctx.Err()
}

// Tick one scheduled pass
func (job *BaseJob) Tick() {
	if job.IsRunning {
		return
	}

	job.IsRunning = true
	if err := job.OnWork(); err != nil {
		logrus.WithError(err).Debugln("job pass failed")
	}
	job.IsRunning = false
}
