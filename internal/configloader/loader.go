// Package configloader resolves the effective mdcallout configuration.
// It discovers project config files by searching upward from the working
// directory, honors explicit paths and the MDCALLOUT_CONFIG environment
// variable, and merges CLI flags on top.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/mdcallout/pkg/config"
)

// EnvConfigPath is the environment variable naming a config file to load.
// It is overridden by an explicit --config path.
const EnvConfigPath = "MDCALLOUT_CONFIG"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery and the env override are skipped.
	ExplicitPath string

	// IgnoreProjectConfig skips project config discovery.
	IgnoreProjectConfig bool

	// IgnoreEnv skips the MDCALLOUT_CONFIG environment variable.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the config files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Explicit config file (opts.ExplicitPath)
//  3. MDCALLOUT_CONFIG file
//  4. Project config (.mdcallout.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.Default()

	// An explicit path replaces discovery entirely; a missing explicit file
	// is an error, while missing discovered files are not.
	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.ExplicitPath, err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else {
		if !opts.IgnoreProjectConfig {
			projectPath, err := FindProjectConfig(ctx, workDir)
			if err != nil {
				return nil, fmt.Errorf("discover project config: %w", err)
			}
			if projectPath != "" {
				projectCfg, err := loadConfigFile(projectPath)
				if err != nil {
					return nil, fmt.Errorf("load config %s: %w", projectPath, err)
				}
				cfg = merge(cfg, projectCfg)
				result.LoadedFrom = append(result.LoadedFrom, projectPath)
			}
		}

		if !opts.IgnoreEnv {
			if envPath := os.Getenv(EnvConfigPath); envPath != "" {
				envCfg, err := loadConfigFile(envPath)
				if err != nil {
					return nil, fmt.Errorf("load config %s (from %s): %w",
						envPath, EnvConfigPath, err)
				}
				cfg = merge(cfg, envCfg)
				result.LoadedFrom = append(result.LoadedFrom, envPath)
			}
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays non-zero fields of overlay onto base and returns the result.
// Neither argument is modified.
func merge(base, overlay *config.Config) *config.Config {
	if overlay == nil {
		return base
	}

	merged := *base

	if overlay.Types != nil {
		merged.Types = overlay.Types
	}
	if len(overlay.Icons) > 0 {
		icons := make(map[string]string, len(base.Icons)+len(overlay.Icons))
		for name, icon := range base.Icons {
			icons[name] = icon
		}
		for name, icon := range overlay.Icons {
			icons[name] = icon
		}
		merged.Icons = icons
	}
	if overlay.Marker != "" {
		merged.Marker = overlay.Marker
	}
	if overlay.ObsidianStyle != nil {
		merged.ObsidianStyle = overlay.ObsidianStyle
	}
	if overlay.DocusaurusStyle != nil {
		merged.DocusaurusStyle = overlay.DocusaurusStyle
	}
	if overlay.Engine != "" {
		merged.Engine = overlay.Engine
	}
	if overlay.Output != "" {
		merged.Output = overlay.Output
	}

	return &merged
}
