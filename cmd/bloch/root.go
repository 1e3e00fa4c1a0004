package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/internal/config"
	"github.com/aretw0/bloch/internal/logging"
	"github.com/aretw0/bloch/internal/metrics"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	engine   *bloch.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "bloch",
		Short: "Bloch is a single-qubit gate explorer",
		Long: `Bloch applies one of the gates I, X, Y, Z, H, S or T to a qubit in |0>
and shows the resulting state on a Bloch sphere, in the browser or the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "bloch.yaml", "Path to the config file (YAML or JSON)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("projection", "", "Bloch projection: full or legacy")

	cmd.AddCommand(
		newServeCmd(a),
		newRenderCmd(a),
		newGatesCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the config, applies flag overrides and builds the engine.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("projection") {
		cfg.Projection, _ = cmd.Flags().GetString("projection")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(level, cfg.Log.Format)
	slog.SetDefault(a.logger)

	opts := []bloch.Option{
		bloch.WithProjection(cfg.ProjectionMode()),
		bloch.WithSphere(cfg.PlotSphere()),
		bloch.WithLogger(a.logger),
	}
	if cfg.Metrics.Enabled {
		a.recorder = metrics.NewRecorder()
		opts = append(opts, bloch.WithHooks(a.recorder.Hooks()))
	}

	a.engine, err = bloch.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
