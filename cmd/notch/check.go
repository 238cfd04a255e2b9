package main

import (
	"fmt"

	"github.com/spf13/cobra"

	notch "github.com/grindlemire/go-notch"
	"github.com/grindlemire/go-notch/internal/rulesfile"
)

func newCheckCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Decode rule files and validate every rule strictly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errorCount int
			for _, path := range args {
				if verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "Checking %s\n", path)
				}
				if err := checkFile(path); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					errorCount++
				}
			}
			if errorCount > 0 {
				return fmt.Errorf("%d file(s) with errors", errorCount)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) OK\n", len(args))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	return cmd
}

func checkFile(path string) error {
	f, err := rulesfile.Load(path)
	if err != nil {
		return err
	}
	if err := notch.Validate(f.Global.Rules()...); err != nil {
		return fmt.Errorf("%s: global: %w", path, err)
	}
	if err := notch.Validate(f.Local.Rules()...); err != nil {
		return fmt.Errorf("%s: local: %w", path, err)
	}
	return nil
}
