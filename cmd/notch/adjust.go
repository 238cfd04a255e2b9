package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	notch "github.com/grindlemire/go-notch"
	"github.com/grindlemire/go-notch/internal/config"
	"github.com/grindlemire/go-notch/internal/cutout"
	"github.com/grindlemire/go-notch/internal/debug"
	"github.com/grindlemire/go-notch/internal/rulesfile"
)

type adjustFlags struct {
	device  string
	rules   string
	cutout  string
	screen  string
	strict  bool
	envFile string
}

func newAdjustCmd() *cobra.Command {
	var f adjustFlags
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Print the adjusted cutout rectangle for a device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("device") {
				cfg.Device = f.device
			}
			if cmd.Flags().Changed("rules") {
				cfg.RulesFile = f.rules
			}
			if cmd.Flags().Changed("cutout") {
				cfg.Cutout = f.cutout
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = f.strict
			}
			var screen notch.Rect
			if f.screen != "" {
				screen, err = cutout.ParseRect(f.screen)
				if err != nil {
					return fmt.Errorf("--screen: %w", err)
				}
			}
			return runAdjust(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, screen)
		},
	}
	cmd.Flags().StringVarP(&f.device, "device", "d", "", "device identifier, e.g. iPhone14,3")
	cmd.Flags().StringVarP(&f.rules, "rules", "r", "", "HCL rules file")
	cmd.Flags().StringVar(&f.cutout, "cutout", "", "raw cutout rectangle as x,y,width,height")
	cmd.Flags().StringVar(&f.screen, "screen", "", "screen rectangle as x,y,width,height; prints the safe area below the cutout")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject rules with invalid scales or keys")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "load settings from this file instead of .env")
	return cmd
}

func loadConfig(envFile string) (*config.Config, error) {
	if envFile != "" {
		return config.Load(envFile)
	}
	return config.Load()
}

func runAdjust(out, errOut io.Writer, cfg *config.Config, screen notch.Rect) error {
	if cfg.Device == "" {
		return fmt.Errorf("device is required (--device or NOTCH_DEVICE)")
	}

	sink, closeSink, err := newSink(cfg, errOut)
	if err != nil {
		return err
	}
	defer closeSink()

	provider, err := cfg.CutoutProvider()
	if err != nil {
		return err
	}

	opts := []notch.Option{notch.WithSink(sink)}
	if cfg.Strict {
		opts = append(opts, notch.WithStrictValidation())
	}
	adj, err := notch.New(provider, opts...)
	if err != nil {
		return err
	}
	consumer := adj.NewConsumer()

	if cfg.RulesFile != "" {
		file, err := rulesfile.Load(cfg.RulesFile)
		if err != nil {
			return err
		}
		if err := adj.SetProcessWideRules(file.Global.Rules()...); err != nil {
			return fmt.Errorf("%s: global rules: %w", cfg.RulesFile, err)
		}
		if err := consumer.SetRules(file.Local.Rules()...); err != nil {
			return fmt.Errorf("%s: local rules: %w", cfg.RulesFile, err)
		}
	}

	raw, found := adj.RawCutout()
	if !found {
		fmt.Fprintf(out, "device:   %s\ncutout:   none\n", cfg.Device)
		return nil
	}

	res := consumer.Resolve(cfg.Device)
	adjusted := consumer.Rect(cfg.Device)

	fmt.Fprintf(out, "device:   %s\n", cfg.Device)
	fmt.Fprintf(out, "raw:      %s\n", formatRect(raw))
	if res.Matched {
		fmt.Fprintf(out, "override: %s %q (%s, corner radius %g)\n", res.Tier, res.Rule.Key, res.Rule.Mode, res.Rule.CornerRadius)
	} else {
		fmt.Fprintf(out, "override: none\n")
	}
	fmt.Fprintf(out, "adjusted: %s\n", formatRect(adjusted))
	fmt.Fprintf(out, "width:    %g\n", adjusted.Width)
	if insets := consumer.SafeInsets(cfg.Device); insets.IsZero() {
		fmt.Fprintf(out, "inset:    none\n")
	} else {
		fmt.Fprintf(out, "inset:    top %g\n", insets.Top)
	}
	if !screen.IsEmpty() {
		fmt.Fprintf(out, "safe:     %s\n", formatRect(consumer.SafeArea(screen, cfg.Device)))
	}
	return nil
}

func newSink(cfg *config.Config, errOut io.Writer) (notch.Sink, func(), error) {
	if cfg.DebugFile != "" {
		fs, err := debug.NewFileSink(cfg.DebugFile)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() { _ = fs.Close() }, nil
	}
	logger := debug.NewLogger(cfg.LogLevel, cfg.LogFormat, errOut)
	return debug.NewSlogSink(logger), func() {}, nil
}

func formatRect(r notch.Rect) string {
	return fmt.Sprintf("x=%g y=%g w=%g h=%g", r.X, r.Y, r.Width, r.Height)
}
