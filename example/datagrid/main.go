// Package main demonstrates a data grid presenting thousands of generated
// records, of which only the visible cells are laid out.
package main

import (
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"git.sr.ht/~gioverse/datagrid/metrics"
	"git.sr.ht/~gioverse/datagrid/profile"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var cfg Config
	cmd := &cobra.Command{
		Use:          "datagrid",
		Short:        "Browse generated records in a windowed data grid",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindEnvironment(cmd)
		},
		RunE: func(*cobra.Command, []string) error {
			return run(cfg)
		},
	}
	cfg.addFlags(cmd.Flags())
	return cmd
}

func run(cfg Config) error {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	if _, err := profile.ParseOpt(cfg.Profile); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	ui := NewUI(cfg, logger, metrics.New(reg))
	logger.WithField("rows", cfg.Rows).Info("generated records")

	go func() {
		w := app.NewWindow(
			app.Title("Data grid"),
			app.Size(unit.Dp(1024), unit.Dp(768)),
		)
		err := ui.Run(w)
		if cfg.Metrics {
			if err := dumpMetrics(reg); err != nil {
				logger.WithError(err).Error("dumping metrics")
			}
		}
		if err != nil {
			logger.WithError(err).Error("premature window close")
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
	return nil
}

func dumpMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stderr, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
