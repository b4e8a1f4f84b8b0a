package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"
	"go.lepak.sg/avltree/tree/avl"
	"golang.org/x/sync/errgroup"
)

var errBoundExceeded = errors.New("height exceeds bound")

type boundConfiguration struct {
	base *baseConfiguration

	MaxN       int
	Trials     int
	Workers    int
	Seed       int64
	CheckEvery int
}

type trialResult struct {
	seed      int64
	maxHeight int
	// smallest gap between the bound and the height seen
	slack float64
}

func newBoundCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &boundConfiguration{base: baseConfig}

	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Check the AVL height bound on random insert and delete sequences",
		Long: `Each trial inserts the keys [0, max-n) in random order, then deletes them
all in another random order. After every operation the height of the tree
must stay within the bound for its current size. Full invariant checks run
every check-every operations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBound(cmd.Context(), cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().IntVar(&config.MaxN, "max-n", 10000, "keys per trial")
	cmd.Flags().IntVar(&config.Trials, "trials", 20, "number of trials")
	cmd.Flags().IntVar(&config.Workers, "workers", 4, "trials run in parallel")
	cmd.Flags().Int64Var(&config.Seed, "seed", 1, "seed of the first trial, the others count up from it")
	cmd.Flags().IntVar(&config.CheckEvery, "check-every", 1000, "run full invariant checks this often, 0 to only check at the end")

	return cmd
}

func runBound(ctx context.Context, out io.Writer, config *boundConfiguration) error {
	log := config.base.log

	if config.MaxN < 0 || config.Trials < 1 || config.Workers < 1 || config.CheckEvery < 0 {
		return fmt.Errorf("invalid configuration: max-n=%d trials=%d workers=%d check-every=%d",
			config.MaxN, config.Trials, config.Workers, config.CheckEvery)
	}

	results := make([]trialResult, config.Trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Workers)
	for i := range config.Trials {
		seed := config.Seed + int64(i)
		g.Go(func() error {
			r, err := runTrial(ctx, config.MaxN, config.CheckEvery, seed)
			if err != nil {
				return fmt.Errorf("trial %d (seed %d): %w", i, seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	worst := results[0]
	for _, r := range results {
		if _, err := fmt.Fprintf(out, "seed %d: max height %d, slack %.3f\n", r.seed, r.maxHeight, r.slack); err != nil {
			return err
		}
		if r.slack < worst.slack {
			worst = r
		}
	}

	log.Info().
		Int("trials", config.Trials).
		Int("max-n", config.MaxN).
		Float64("bound", avl.HeightBound(config.MaxN)).
		Int64("tightest-seed", worst.seed).
		Float64("tightest-slack", worst.slack).
		Msg("height bound held")

	return nil
}

// runTrial inserts then deletes a shuffled range of keys and checks the
// tree after each operation.
func runTrial(ctx context.Context, num, checkEvery int, seed int64) (trialResult, error) {
	rd := rand.New(rand.NewSource(seed))
	res := trialResult{seed: seed, slack: avl.HeightBound(num) + 1}
	t := avl.New[int]()
	ops := 0

	check := func() error {
		ops++
		if ops%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		h, bound := t.Height(), avl.HeightBound(t.Len())
		if float64(h) > bound {
			return fmt.Errorf("%w: height %d, bound %.3f at n=%d", errBoundExceeded, h, bound, t.Len())
		}
		res.maxHeight = max(res.maxHeight, h)
		res.slack = min(res.slack, bound-float64(h))

		if checkEvery > 0 && ops%checkEvery == 0 {
			return t.CheckInvariants()
		}
		return nil
	}

	for _, k := range rd.Perm(num) {
		t.Insert(k)
		if err := check(); err != nil {
			return res, err
		}
	}

	if err := t.CheckInvariants(); err != nil {
		return res, err
	}

	for _, k := range rd.Perm(num) {
		if _, ok := t.Delete(k); !ok {
			return res, fmt.Errorf("key %d went missing", k)
		}
		if err := check(); err != nil {
			return res, err
		}
	}

	if t.Len() != 0 {
		return res, fmt.Errorf("%d keys left after deleting all of them", t.Len())
	}

	return res, nil
}
