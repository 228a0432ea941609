package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/on-the-ground/memo_ive_go/pure"
	"github.com/on-the-ground/memo_ive_go/purefn"
	"github.com/on-the-ground/memo_ive_go/shared/logger"
	"github.com/rickb777/date/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	configF   = "config"
	logLevelF = "log-level"
	capacityF = "capacity"
	targetF   = "target"

	defaultConfig   = ""
	defaultCapacity = 128
	defaultLogLevel = logger.LogInfo

	configFlagUsage   = "The yaml configuration file."
	logLevelFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	capacityFlagUsage = "Maximum number of results kept by the cache."
	targetFlagUsage   = "The value to look for."
)

var ErrUnsorted = errors.New("input is not sorted")

// NewCmd builds the memo command tree.
func NewCmd() *cobra.Command {
	var cfgFile string

	memoCmd := &cobra.Command{
		Use:           "memo",
		Short:         "Bounded memoizing cache playground.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	memoCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	memoCmd.PersistentFlags().String(logLevelF, string(defaultLogLevel), logLevelFlagUsage)

	memoCmd.AddCommand(
		newLRUCmd(&cfgFile),
		newParseDateCmd(&cfgFile),
		newTransposeCmd(),
		newSearchCmd(),
		newSortCmd(),
	)
	return memoCmd
}

// setup loads the configuration and the logger shared by the cached commands.
func setup(cmd *cobra.Command, cfgFile string) (*Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewConsole(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func newLRUCmd(cfgFile *string) *cobra.Command {
	lruCmd := &cobra.Command{
		Use:   "lru CALL...",
		Short: "Replay comma separated calls through a cached sum.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, *cfgFile)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			store, err := purefn.New(cfg.Cache.Capacity, sum,
				purefn.WithLogger[int](log),
				purefn.WithName[int]("sum"),
				purefn.WithOnEvict(func(k purefn.Key, _ int) {
					log.Info("evicted", zap.Stringer("key", k))
				}),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, call := range args {
				operands, err := parseInts(strings.Split(call, ","))
				if err != nil {
					return fmt.Errorf("call %q: %w", call, err)
				}
				callArgs := make([]any, len(operands))
				for i, n := range operands {
					callArgs[i] = n
				}

				misses := store.Stats().Misses
				v, err := store.GetOrCompute(callArgs...)
				if err != nil {
					return err
				}
				status := "hit"
				if store.Stats().Misses > misses {
					status = "miss"
				}
				if _, err := fmt.Fprintf(out, "sum%s = %d %s len=%d\n",
					purefn.KeyOf(intArgs(operands)...), v, status, store.Len()); err != nil {
					return err
				}
			}

			stats := store.Stats()
			_, err = fmt.Fprintf(out, "hits=%d misses=%d evictions=%d\n",
				stats.Hits, stats.Misses, stats.Evictions)
			return err
		},
	}
	lruCmd.Flags().Int(capacityF, defaultCapacity, capacityFlagUsage)
	return lruCmd
}

func newParseDateCmd(cfgFile *string) *cobra.Command {
	parseDateCmd := &cobra.Command{
		Use:   "parse-date DATE...",
		Short: "Parse M/D/YYYY dates.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, *cfgFile)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			if cfg.Cache.Capacity <= 0 {
				return purefn.ErrInvalidCapacity
			}
			parse := purefn.TryTableizeI1O1(pure.ParseDate, cfg.Cache.Capacity)

			var errs error
			for _, s := range args {
				d, err := parse(s)
				if err != nil {
					log.Debug("rejected date", zap.String("input", s), zap.Error(err))
					errs = multierr.Append(errs, fmt.Errorf("%q: %w", s, err))
					continue
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatDate(d)); err != nil {
					return err
				}
			}
			return errs
		},
	}
	parseDateCmd.Flags().Int(capacityF, defaultCapacity, capacityFlagUsage)
	return parseDateCmd
}

func newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose MATRIX",
		Short: "Transpose a matrix given in flow form, e.g. [[1,2],[3,4]].",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var matrix [][]any
			if err := yaml.Unmarshal([]byte(args[0]), &matrix); err != nil {
				return fmt.Errorf("matrix %q: %w", args[0], err)
			}
			transposed, err := pure.Transpose(matrix)
			if err != nil {
				return err
			}
			for _, row := range transposed {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), row...); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search --target T N...",
		Short: "Binary search a sorted list of integers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := cmd.Flags().GetInt(targetF)
			if err != nil {
				return err
			}
			sorted, err := parseInts(args)
			if err != nil {
				return err
			}
			if !slices.IsSorted(sorted) {
				return ErrUnsorted
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pure.BinarySearch(sorted, target))
			return err
		},
	}
	searchCmd.Flags().Int(targetF, 0, targetFlagUsage)
	_ = searchCmd.MarkFlagRequired(targetF)
	return searchCmd
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort N...",
		Short: "Merge sort a list of integers.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseInts(args)
			if err != nil {
				return err
			}
			pure.MergeSort(s)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Trim(fmt.Sprint(s), "[]"))
			return err
		},
	}
}

func sum(args ...any) (int, error) {
	total := 0
	for _, a := range args {
		total += a.(int)
	}
	return total, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func intArgs(ns []int) []purefn.Arg {
	out := make([]purefn.Arg, len(ns))
	for i, n := range ns {
		out[i] = purefn.Int(n)
	}
	return out
}

func formatDate(d date.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}
