package worker

import (
	"context"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// Worker long running worker, returns when ctx is done
type Worker interface {
	Run(ctx context.Context) error
}

// IJob cron job
type IJob interface {
	Start() error
	Run()
	Stop() error
}

type OnWork func() error

// BaseJob runs OnWork on the cron schedule, skipping ticks while a run is in flight
type BaseJob struct {
	Cron    *cron.Cron
	OnWork  OnWork
	running atomic.Bool
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	<-job.Cron.Stop().Done()
	return nil
}

func (job *BaseJob) Run() {
	if !job.running.CompareAndSwap(false, true) {
		return
	}
	defer job.running.Store(false)

	_ = job.OnWork()
}

// IsRunning a run is in flight
func (job *BaseJob) IsRunning() bool {
	return job.running.Load()
}

// Serve start the job and stop it once ctx is done
func Serve(ctx context.Context, job IJob) error {
	if err := job.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return job.Stop()
}
