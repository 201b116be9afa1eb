package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "run <seconds>",
		Short: "Count down without the interactive screen",
		Long: `run starts a countdown immediately and prints the remaining time on every
tick until it reaches zero. Interrupting the command stops the countdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := parseRunSeconds(args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runHeadless(ctx, cmd, seconds, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", config.TickInterval, "Tick interval")
	_ = cmd.Flags().MarkHidden("interval")
	return cmd
}

func parseRunSeconds(arg string) (int, error) {
	seconds, err := countdown.ParseSecondsStrict(arg)
	if err != nil {
		return 0, err
	}
	if seconds <= 0 {
		return 0, &countdown.DurationError{
			Input: arg,
			Err:   fmt.Errorf("%w: must be positive", countdown.ErrInvalidDuration),
		}
	}
	return seconds, nil
}

func runHeadless(ctx context.Context, cmd *cobra.Command, seconds int, interval time.Duration) error {
	out := cmd.OutOrStdout()
	started := false
	runner := countdown.NewRunner(
		countdown.WithInterval(interval),
		countdown.WithObserver(func(s countdown.State) {
			if started {
				fmt.Fprintln(out, s.Label())
			}
		}),
	)
	runner.Timer().SetConfigured(seconds)
	started = true
	runner.Timer().Start()

	err := runner.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "stopped with %s\n", runner.Timer().Label())
		return nil
	}
	return err
}
