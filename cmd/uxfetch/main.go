/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/suparena/uxfetch"
	"github.com/suparena/uxfetch/datastore/ddb"
	uxferrors "github.com/suparena/uxfetch/errors"
	"github.com/suparena/uxfetch/export"
	"github.com/suparena/uxfetch/fetcher"
	"github.com/suparena/uxfetch/records"
	"github.com/suparena/uxfetch/tables"
)

var (
	// Flags
	region           string
	profile          string
	accessKey        string
	secretKey        string
	tablePrefix      string
	participantsOnly bool
	withTrackers     bool
	subfolder        bool
	verbose          bool
	showVersion      bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uxfetch [flags] EXPERIMENT",
	Short: "Download Unity Experiment Framework data from AWS DynamoDB",
	Long: `uxfetch downloads the DynamoDB tables a UXF experiment wrote and saves
them as tab-separated CSV files in the working directory.

Credentials resolve in order: an explicit --access/--secret pair, then a
named --profile from the shared AWS credentials file, then the ambient
default credential chain (environment, instance role). A .env file in the
working directory is loaded before resolution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE:          run,
}

func init() {
	// Flag parse failures are argument mistakes and share the usage exit code
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return uxferrors.NewUsageError("%v", err)
	})

	rootCmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to use for DynamoDB (required)")
	rootCmd.Flags().BoolVarP(&participantsOnly, "participants", "p", false, "Only retrieve participant details")
	rootCmd.Flags().BoolVarP(&withTrackers, "trackers", "t", false, "Also download the Trackers table (caution: this might use a lot of data!)")
	rootCmd.Flags().BoolVarP(&subfolder, "folder", "f", false, "Create a subfolder using the experiment name")
	rootCmd.Flags().StringVar(&profile, "profile", "", "Use a specific profile from the AWS credentials file")
	rootCmd.Flags().StringVar(&accessKey, "access", "", "AWS access key to use")
	rootCmd.Flags().StringVar(&secretKey, "secret", "", "AWS secret key to use")
	rootCmd.Flags().StringVar(&tablePrefix, "prefix", tables.DefaultPrefix, "Table name prefix used by the UXF deployment")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		info := uxfetch.GetVersionInfo()
		fmt.Printf("uxfetch version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		return nil
	}

	if len(args) != 1 {
		return uxferrors.NewUsageError("exactly one EXPERIMENT argument is required")
	}
	if region == "" {
		return uxferrors.NewUsageError("--region is required")
	}
	if (accessKey == "") != (secretKey == "") {
		return uxferrors.NewUsageError("--access and --secret must both be specified to use credentials from the command line")
	}

	// Initialize logger
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// A .env file may carry AWS_* variables for the default chain
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	ctx := cmd.Context()
	experiment := args[0]

	store, err := ddb.New(ctx, ddb.Config{
		Region:    region,
		Profile:   profile,
		AccessKey: accessKey,
		SecretKey: secretKey,
	})
	if err != nil {
		return err
	}

	sinkOpts := []export.Option{export.WithLogger(logger)}
	if participantsOnly {
		// Participant details are shown on the terminal as well as saved
		sinkOpts = append(sinkOpts, export.WithEcho(os.Stdout))
	}
	sink, err := export.NewCSVWriter(experiment, subfolder, sinkOpts...)
	if err != nil {
		return err
	}

	query := records.ExperimentQuery{
		Experiment:       experiment,
		TablePrefix:      tablePrefix,
		ParticipantsOnly: participantsOnly,
		IncludeTrackers:  withTrackers,
	}

	logger.Info("retrieving results for UXF experiment",
		zap.String("experiment", experiment),
		zap.String("region", region))

	if err := fetcher.New(store, logger).Fetch(ctx, query, sink); err != nil {
		return err
	}

	logger.Info("download complete", zap.String("output", sink.Dir()))
	return nil
}

// failureKind names the error taxonomy entry for the terminal message.
func failureKind(err error) string {
	switch {
	case uxferrors.IsUsage(err):
		return "usage error"
	case uxferrors.IsAuthentication(err):
		return "authentication error"
	case uxferrors.IsNotFound(err):
		return "not found"
	case uxferrors.IsRemoteService(err):
		return "remote service error"
	default:
		return "error"
	}
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "uxfetch: %s: %v\n", failureKind(err), err)
	if errors.Is(err, uxferrors.ErrUsage) {
		os.Exit(2)
	}
	os.Exit(1)
}
