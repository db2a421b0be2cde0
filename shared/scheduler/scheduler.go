// Package scheduler runs periodic maintenance jobs, currently the premium
// subscription expiry sweep.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// PremiumSweeper downgrades users whose premium subscription has lapsed.
type PremiumSweeper interface {
	SweepExpiredPremium(ctx context.Context) (int64, error)
}

// Scheduler owns the cron runner and the registered jobs.
type Scheduler struct {
	cron    *cron.Cron
	sweeper PremiumSweeper
}

func New(sweeper PremiumSweeper) *Scheduler {
	return &Scheduler{
		// Prevent overlapping runs
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		sweeper: sweeper,
	}
}

// Start registers the premium sweep on the given cron schedule and starts
// the runner. Jobs stop when Stop is called.
func (s *Scheduler) Start(ctx context.Context, schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.runSweep(ctx); err != nil {
			log.Printf("Error running premium expiry sweep: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	log.Printf("Scheduler started with premium sweep schedule: %s", schedule)
	s.cron.Start()
	return nil
}

// Stop halts the cron runner and waits for any running job to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	log.Println("Scheduler stopped")
}

func (s *Scheduler) runSweep(ctx context.Context) error {
	downgraded, err := s.sweeper.SweepExpiredPremium(ctx)
	if err != nil {
		return fmt.Errorf("premium sweep failed: %w", err)
	}
	if downgraded > 0 {
		log.Printf("Premium sweep downgraded %d expired subscription(s)", downgraded)
	}
	return nil
}
