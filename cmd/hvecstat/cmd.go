package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/webbmaffian/go-headervec/alloc"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var (
		opts    options
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "hvecstat",
		Short: "Drive a header vector through a workload and show its memory",
		Long: `hvecstat pushes, pops, inserts and removes samples in a single
header vector and renders its length, capacity and allocator usage.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(verbose)

			if err != nil {
				return err
			}

			defer log.Sync()

			alloc.SetLogger(log.Named("alloc"))
			return run(cmd.Context(), opts, cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.count, "count", "n", 100_000, "number of operations to run")
	flags.IntVarP(&opts.capacity, "capacity", "c", 0, "initial capacity of the vector")
	flags.StringVarP(&opts.allocator, "allocator", "a", "heap", "allocator backing the vector (heap or mmap)")
	flags.StringVarP(&opts.workload, "workload", "w", "mixed", "workload to run (push, churn, insert or mixed)")
	flags.IntVar(&opts.every, "every", 1000, "render stats every N operations (0 renders only at the end)")
	flags.DurationVar(&opts.delay, "delay", 0, "pause between renders")
	flags.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "seed for the random workloads")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every allocation")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	log, err := cfg.Build()

	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return log, nil
}
