package audit

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Watch runs job once immediately, then on every tick of the cron schedule
// until ctx is cancelled. A tick that fires while the previous run is still
// going is skipped. Watch returns nil on cancellation.
func Watch(ctx context.Context, schedule string, job func(context.Context)) error {
	sched, err := cron.ParseStandard(schedule)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, schedule, err)
	}

	job(ctx)
	if ctx.Err() != nil {
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(sched, cron.FuncJob(func() { job(ctx) }))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
