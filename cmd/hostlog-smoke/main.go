// Command hostlog-smoke installs the host adapter and pushes records
// through it. It is used to eyeball host output and to stress the
// boundary from many goroutines.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/hostlog"
	"github.com/trickstertwo/hostlog/adapter/clamav"
	"github.com/trickstertwo/hostlog/adapter/host"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		workers int
		records int
		level   string
		policy  string
	)

	cmd := &cobra.Command{
		Use:           "hostlog-smoke",
		Short:         "Emit log records through the host sinks",
		Long:          `Installs the host adapter, emits one record per severity, then optionally a concurrent burst at the chosen level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := hostlog.ParseLevel(level)
			if err != nil {
				return err
			}
			p, err := parsePolicy(policy)
			if err != nil {
				return err
			}
			if !clamav.Init(host.WithPolicy(p)) {
				return fmt.Errorf("hostlog-smoke: logger already registered")
			}
			if clamav.Init() {
				return fmt.Errorf("hostlog-smoke: second Init succeeded")
			}

			hostlog.Debug().Msg("Hello")
			hostlog.Info().Msg("darkness")
			hostlog.Warn().Msg("my old")
			hostlog.Error().Msg("friend.")
			slog.Info("standard library records arrive too")

			burst(workers, records, lvl)
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Goroutines emitting records concurrently")
	cmd.Flags().IntVarP(&records, "records", "n", 100, "Records per goroutine")
	cmd.Flags().StringVarP(&level, "level", "l", "info", "Level of burst records (trace|debug|info|warn|error)")
	cmd.Flags().StringVar(&policy, "policy", "drop", "Handling of records containing NUL bytes (drop|truncate|abort)")
	return cmd
}

func burst(workers, records int, level hostlog.Level) {
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			l := hostlog.L()
			for i := 0; i < records; i++ {
				l.Log(hostlog.Record{Level: level, Format: "worker %d record %d", Args: []any{w, i}})
			}
		}(w)
	}
	wg.Wait()
}

func parsePolicy(s string) (host.Policy, error) {
	for _, p := range []host.Policy{host.PolicyDrop, host.PolicyTruncate, host.PolicyAbort} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("hostlog-smoke: unknown policy %q", s)
}
