// Package cmd implements the CLI (Command Line Interface) of the application.
//
// hash - Print the fingerprint of one or more client names
// keys - Print the key pair registered for one or more server ids
// servers - List every registered server and its keys
// pair - Hash a client name and look up the keys of the server it pairs with
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/leighmacdonald/pairhash/internal/config"
	"github.com/leighmacdonald/pairhash/internal/domain"
	"github.com/leighmacdonald/pairhash/internal/log"
	"github.com/leighmacdonald/pairhash/internal/pairing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// BuildVersion is set at link time.
var BuildVersion = "master" //nolint:gochecknoglobals

// cliState holds the state shared by all sub commands once the configuration is loaded.
type cliState struct {
	configPath  string
	metricsFile string
	conf        domain.Config
	pairing     *pairing.Service
	metrics     *prometheus.Registry
	sentry      *sentry.Client
	logCloser   func()
}

func (r *cliState) setup(cmd *cobra.Command) error {
	conf, errConfig := config.Read(r.configPath)
	if errConfig != nil {
		return errConfig
	}

	if r.metricsFile != "" {
		conf.Metrics.Textfile = r.metricsFile
	}

	r.conf = conf

	if conf.Log.SentryDSN != "" {
		client, errSentry := log.NewSentryClient(conf.Log.SentryDSN, BuildVersion)
		if errSentry != nil {
			return errSentry
		}

		r.sentry = client
	}

	handler, logCloser, errHandler := log.NewHandler(cmd.Context(), conf.Log, cmd.ErrOrStderr())
	if errHandler != nil {
		return errHandler
	}

	r.logCloser = logCloser
	log.SetDefault(handler, BuildVersion)

	registry, errRegistry := config.Registry(conf)
	if errRegistry != nil {
		return errRegistry
	}

	r.metrics = prometheus.NewRegistry()

	metrics, errMetrics := pairing.NewMetrics(r.metrics)
	if errMetrics != nil {
		return errMetrics
	}

	r.pairing = pairing.New(registry, metrics)

	slog.Debug("Loaded key registry", slog.Int("servers", registry.Len()))

	return nil
}

// close writes the metrics textfile, flushes sentry and closes the log file. It is safe to
// call when setup failed part way through.
func (r *cliState) close() error {
	var errMetrics error

	if r.metrics != nil && r.conf.Metrics.Textfile != "" {
		if errWrite := prometheus.WriteToTextfile(r.conf.Metrics.Textfile, r.metrics); errWrite != nil {
			errMetrics = errors.Join(errWrite, domain.ErrMetricsWrite)
			slog.Error("Failed to write metrics", slog.String("error", errWrite.Error()),
				slog.String("path", r.conf.Metrics.Textfile))
		}
	}

	log.FlushSentry(r.sentry)

	if r.logCloser != nil {
		r.logCloser()
	}

	return errMetrics
}

// newRootCmd builds the command tree. Each call returns an independent tree along with the
// state its commands share.
func newRootCmd() (*cobra.Command, *cliState) {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:          "pairhash",
		Short:        "Client name fingerprints and server key pairs",
		Long:         `Computes client name fingerprints and looks up the key pairs registered for each server.`,
		Version:      BuildVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.configPath, "config", "",
		"config file (default is pairhash.yml in $HOME or the working directory)")
	rootCmd.PersistentFlags().StringVar(&state.metricsFile, "metrics-file", "",
		"write prometheus metrics to this file on exit (overrides metrics.textfile)")

	rootCmd.AddCommand(hashCmd(state))
	rootCmd.AddCommand(keysCmd(state))
	rootCmd.AddCommand(serversCmd(state))
	rootCmd.AddCommand(pairCmd(state))

	return rootCmd, state
}

// run executes the command tree and releases its resources whether or not the command
// succeeded. Failures are logged at error level so they reach sentry.
func run(ctx context.Context, rootCmd *cobra.Command, state *cliState) error {
	errExecute := rootCmd.ExecuteContext(ctx)
	if errExecute != nil {
		slog.ErrorContext(ctx, "Command failed", slog.String("error", errExecute.Error()))
	}

	return errors.Join(errExecute, state.close())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd, state := newRootCmd()
	if errRun := run(context.Background(), rootCmd, state); errRun != nil {
		os.Exit(1)
	}
}
