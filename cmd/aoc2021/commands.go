package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"aoc2021"
)

var (
	configPath string
	verbose    bool
	sampleOnly bool

	runner *aoc.Runner

	rootCmd = &cobra.Command{
		Use:           "aoc2021",
		Short:         "Solve Advent of Code 2021 puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := aoc.LoadConfig(configPath)
			if err != nil {
				return err
			}
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			runner = &aoc.Runner{Config: cfg, Log: logger}
			return nil
		},
	}

	runCmd = &cobra.Command{
		Use:   "run [day]",
		Short: "Run one day, the latest registered one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDay,
	}

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Run every registered day",
		Args:  cobra.NoArgs,
		RunE:  runAll,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range aoc.Days() {
				p, _ := aoc.Lookup(d)
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", d, p.Title)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "aoc.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	runCmd.Flags().BoolVar(&sampleOnly, "sample", false, "solve the embedded example input only")

	rootCmd.AddCommand(runCmd, allCmd, listCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	day := aoc.Latest()
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad day %q", args[0])
		}
		day = n
	}
	p, err := aoc.Lookup(day)
	if err != nil {
		return err
	}
	var res aoc.Result
	if sampleOnly {
		res, err = runner.RunSample(p)
	} else {
		res, err = runner.Run(cmd.Context(), p)
	}
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}

func runAll(cmd *cobra.Command, args []string) error {
	results, err := runner.RunAll(cmd.Context(), aoc.Days())
	if err != nil {
		return err
	}
	for _, res := range results {
		printResult(cmd.OutOrStdout(), res)
	}
	return nil
}

func printResult(w io.Writer, res aoc.Result) {
	fmt.Fprintf(w, "day %d: %v\n", res.Day, res.Answer)
	if res.Answer.Display != "" {
		fmt.Fprint(w, res.Answer.Display)
	}
}
