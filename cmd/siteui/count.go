package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/counter"
)

func (c *cli) countCommand() *cobra.Command {
	var (
		target   int
		duration time.Duration
		step     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Animate a statistic counter in the terminal",
		Long: `Count from zero to the target the way the page animates its statistics.

Examples:
  siteui count --target 1500
  siteui count --target 250 --duration 1s --step 20ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runCount(cmd, counter.Spec{Target: target, Duration: duration, Step: step})
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "final value")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "animation length (config default when zero)")
	cmd.Flags().DurationVarP(&step, "step", "s", 0, "tick interval (config default when zero)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (c *cli) runCount(cmd *cobra.Command, spec counter.Spec) error {
	if spec.Duration == 0 {
		spec.Duration = c.cfg.Counters.Duration
	}
	if spec.Step == 0 {
		spec.Step = c.cfg.Counters.Step
	}

	handle, err := counter.Animate(spec, func(value int) {
		fmt.Fprintf(c.out, "\r%s", counter.FormatThousands(value))
	},
		counter.WithScheduler(c.scheduler),
		counter.WithLogger(c.logger),
		counter.WithName("cli"),
	)
	if err != nil {
		return err
	}

	select {
	case <-handle.Done():
	case <-cmd.Context().Done():
		handle.Stop()
		<-handle.Done()
		c.logger.Debug("counter interrupted", zap.Int("last", handle.Status().Last))
	}
	fmt.Fprintln(c.out)
	return nil
}
