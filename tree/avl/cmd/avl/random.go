package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/avl"
	"go.lepak.sg/avltree/tree/binary"
	"go.lepak.sg/avltree/tree/render"
)

// inspectable is what both tree kinds offer for printing.
type inspectable interface {
	Root() *tree.Node[int]
	Len() int
	Height() int
	All() iter.Seq[int]
}

type randomConfiguration struct {
	base *baseConfiguration

	Num         int
	Seed        int64
	Unbalanced  bool
	BalancedBST bool
	Heights     bool
	Timeout     time.Duration
}

func newRandomCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &randomConfiguration{base: baseConfig}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build a tree from the keys [0, n) inserted in random order and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(cmd.Context(), cmd.OutOrStdout(), config)
		},
	}

	cmd.Flags().IntVarP(&config.Num, "num", "n", 15, "number of keys")
	cmd.Flags().Int64VarP(&config.Seed, "seed", "s", 1, "seed for the insert order")
	cmd.Flags().BoolVar(&config.Unbalanced, "unbalanced", false, "build a plain binary search tree")
	cmd.Flags().BoolVar(&config.BalancedBST, "balanced-bst", false, "retry plain binary search trees until one happens to be balanced")
	cmd.Flags().BoolVar(&config.Heights, "heights", false, "show the height of every node (AVL trees only)")
	cmd.Flags().DurationVar(&config.Timeout, "timeout", 10*time.Second, "give up on --balanced-bst after this long")
	cmd.MarkFlagsMutuallyExclusive("unbalanced", "balanced-bst")

	return cmd
}

func runRandom(ctx context.Context, out io.Writer, config *randomConfiguration) error {
	log := config.base.log

	if config.Num < 0 {
		return fmt.Errorf("invalid number of keys %d", config.Num)
	}

	if config.Heights && (config.Unbalanced || config.BalancedBST) {
		return errors.New("--heights needs an AVL tree: binary search trees do not keep heights")
	}

	var t inspectable
	switch {
	case config.BalancedBST:
		ctx, cancel := context.WithTimeout(ctx, config.Timeout)
		defer cancel()

		tr, attempts, err := binary.BuildRandomBalanced(ctx, config.Num, config.Seed)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("no balanced tree after %d attempts: %w", attempts, err)
			}
			return err
		}
		log.Info().Int("attempts", attempts).Msg("found a balanced binary search tree")
		t = tr

	case config.Unbalanced:
		t = binary.BuildRandom(config.Num, config.Seed)

	default:
		tr := avl.BuildRandom(config.Num, config.Seed)
		if err := tr.CheckInvariants(); err != nil {
			return err
		}
		t = tr
	}

	log.Debug().Int("n", t.Len()).Int64("seed", config.Seed).Msg("built tree")

	return printTree(out, t, config.Heights)
}

func printTree(out io.Writer, t inspectable, heights bool) error {
	keys := make([]int, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}

	if _, err := fmt.Fprintf(out, "keys: %v\n", keys); err != nil {
		return err
	}
	if _, err := io.WriteString(out, render.Box(t.Root(), render.Options{Heights: heights})); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "height: %d (bound %.3f)\n", t.Height(), avl.HeightBound(t.Len()))
	return err
}
