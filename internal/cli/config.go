package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcallout/internal/configloader"
	"github.com/yaklabco/mdcallout/internal/logging"
	"github.com/yaklabco/mdcallout/pkg/config"
)

// styleFlags are the flag names shared by commands that build an extension.
type styleFlags struct {
	marker       string
	types        []string
	noObsidian   bool
	noDocusaurus bool
}

// addStyleFlags registers the shared syntax flags on cmd.
func addStyleFlags(cmd *cobra.Command, flags *styleFlags) {
	cmd.Flags().StringVar(&flags.marker, "marker", "",
		"fence marker for the container syntax (default \":\")")
	cmd.Flags().StringSliceVar(&flags.types, "type", nil,
		"admonition types to recognize (repeatable; default note,tip,warning,danger,info)")
	cmd.Flags().BoolVar(&flags.noObsidian, "no-obsidian", false,
		"disable the \"> [!type]\" callout syntax")
	cmd.Flags().BoolVar(&flags.noDocusaurus, "no-docusaurus", false,
		"disable the \":::type\" fenced syntax")
}

// cliConfig converts the changed flags into a config overlay.
// Unchanged flags stay zero so file and default values survive the merge.
func (f *styleFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}

	if cmd.Flags().Changed("marker") {
		cfg.Marker = f.marker
	}
	if cmd.Flags().Changed("type") {
		cfg.Types = f.types
	}
	if f.noObsidian {
		off := false
		cfg.ObsidianStyle = &off
	}
	if f.noDocusaurus {
		off := false
		cfg.DocusaurusStyle = &off
	}

	return cfg
}

// resolveConfig merges defaults, discovered config files, and CLI flags.
func resolveConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	logger := logging.Default()
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldMarker, loadResult.Config.Marker,
		logging.FieldTypes, loadResult.Config.Types,
		logging.FieldEngine, loadResult.Config.Engine,
	)

	return loadResult.Config, nil
}
