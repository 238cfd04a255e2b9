// Package main provides the notch CLI for inspecting cutout overrides.
//
// Usage:
//
//	notch adjust --device ID [--rules file] [--cutout x,y,w,h]
//	notch check FILE...
//	notch version
//
// Settings not given as flags are read from the environment (NOTCH_DEVICE,
// NOTCH_RULES_FILE, NOTCH_CUTOUT, NOTCH_STRICT, LOG_LEVEL, LOG_FORMAT) and
// from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "notch",
		Short:         "Inspect safe-area cutout adjustments for a device",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAdjustCmd(), newCheckCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notch version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
