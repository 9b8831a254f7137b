package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"
)

// reminderHour is the fixed local hour at which the daily job fires.
const reminderHour = 9

// Scheduler runs one injected job once a day at a fixed hour. It assumes a
// single instance process-wide; running two schedulers would double-fire.
type Scheduler struct {
	job  func()
	done chan struct{}
	now  func() time.Time
}

func New(job func()) *Scheduler {
	return &Scheduler{
		job:  job,
		done: make(chan struct{}),
		now:  time.Now,
	}
}

func (s *Scheduler) Start() {
	go s.run()
	logrus.Infof("scheduler started, daily job at %02d:00", reminderHour)
}

func (s *Scheduler) Stop() {
	close(s.done)
	logrus.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	for {
		next := NextRun(s.now())
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-timer.C:
			s.job()
		case <-s.done:
			timer.Stop()
			return
		}
	}
}

// NextRun returns the next occurrence of the fixed hour strictly after now.
func NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), reminderHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
