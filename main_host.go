//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"glint/app"
	"glint/hal"
	"glint/internal/buildinfo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		headless bool
		term     bool
		ticks    uint64
		scale    int
		animate  bool
		hz       int
	)

	def := app.DefaultFileConfig()

	cmd := &cobra.Command{
		Use:          "glint",
		Short:        "Menu engine demo for 128x64 monochrome displays",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := def
			if cfgPath != "" {
				var err error
				if cfg, err = app.LoadFileConfig(cfgPath); err != nil {
					return err
				}
			}
			// Explicit flags win over the config file.
			if cmd.Flags().Changed("scale") {
				cfg.Scale = scale
			}
			if cmd.Flags().Changed("animate") {
				cfg.Animate = animate
			}
			if cmd.Flags().Changed("hz") {
				cfg.Hz = hz
			}

			newApp := func(h hal.HAL) func() error {
				return app.NewWithConfig(h, app.Config{Animate: cfg.Animate})
			}

			switch {
			case headless:
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: ticks})
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			case term:
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()
				err := hal.RunTerm(ctx, newApp, hal.TermConfig{Hz: cfg.Hz})
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			default:
				return hal.RunWindow(newApp, hal.WindowConfig{Scale: cfg.Scale})
			}
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without a window")
	cmd.Flags().BoolVar(&term, "term", false, "render into the terminal instead of a window")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "stop after N ticks in headless mode (0 = run forever)")
	cmd.Flags().IntVar(&scale, "scale", def.Scale, "window pixel scale")
	cmd.Flags().BoolVar(&animate, "animate", def.Animate, "slide transitions between menus")
	cmd.Flags().IntVar(&hz, "hz", def.Hz, "tick rate for headless and terminal modes")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("glint %s (commit %s, built %s)\n",
				buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
		},
	}
}
