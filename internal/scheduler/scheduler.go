package scheduler

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"

	"github.com/basedalex/yadro-paice/pkg/config"
)

// New runs update once right away and then every cfg.UpdateHours hours
// until ctx is cancelled. A nil clk uses the wall clock.
func New(ctx context.Context, cfg *config.Config, clk clock.Clock, update func(context.Context)) {
	if clk == nil {
		clk = clock.New()
	}

	hours := cfg.UpdateHours
	if hours <= 0 {
		hours = 24
	}

	ticker := clk.Ticker(time.Duration(hours) * time.Hour)
	defer ticker.Stop()

	update(ctx)
	logrus.Println("Last updated at:", clk.Now())

	for {
		select {
		case <-ticker.C:
			update(ctx)
			logrus.Println("Last updated at:", clk.Now())
		case <-ctx.Done():
			return
		}
	}
}
