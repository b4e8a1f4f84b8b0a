package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.lepak.sg/avltree/tree/avl"
)

type opsConfiguration struct {
	base *baseConfiguration

	Delete []int
}

func newOpsCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &opsConfiguration{base: baseConfig}

	cmd := &cobra.Command{
		Use:   "ops KEY...",
		Short: "Insert keys in the given order, then delete some, and print the AVL tree",
		Example: `  avl ops 10 20 30
  avl ops 20 10 30 5 15 25 35 -d 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int, 0, len(args))
			for _, a := range args {
				k, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid key %q: %w", a, err)
				}
				keys = append(keys, k)
			}
			return runOps(cmd.OutOrStdout(), config, keys)
		},
	}

	cmd.Flags().IntSliceVarP(&config.Delete, "delete", "d", nil, "keys to delete after inserting, in order")

	return cmd
}

func runOps(out io.Writer, config *opsConfiguration, keys []int) error {
	log := config.base.log
	t := avl.New[int]()

	for _, k := range keys {
		t.Insert(k)
		if err := t.CheckInvariants(); err != nil {
			return fmt.Errorf("after inserting %d: %w", k, err)
		}
		log.Debug().Int("key", k).Int("height", t.Height()).Msg("inserted")
	}

	for _, k := range config.Delete {
		removed, ok := t.Delete(k)
		if !ok {
			log.Warn().Int("key", k).Msg("not found, nothing deleted")
			continue
		}
		if err := t.CheckInvariants(); err != nil {
			return fmt.Errorf("after deleting %d: %w", k, err)
		}
		log.Debug().Int("key", k).Int("unlinked", removed.Key()).Int("height", t.Height()).Msg("deleted")
	}

	return printTree(out, t, true)
}
