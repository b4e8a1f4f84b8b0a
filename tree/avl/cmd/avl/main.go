// Command avl builds and inspects AVL trees and checks their height
// bound experimentally.
//
// Flags can also be given as environment variables prefixed with AVL_
// (dashes become underscores, e.g. AVL_MAX_N) or as keys of a YAML
// file passed with --config. Command line flags win over both.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cobra.CheckErr(newRootCmd().ExecuteContext(ctx))
}
