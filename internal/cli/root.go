// Package cli provides the Cobra command structure for mdcallout.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcallout/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdcallout command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdcallout",
		Short: "Render Markdown admonition blocks to HTML",
		Long: `mdcallout renders Markdown documents that use admonition blocks,
supporting both the fenced container syntax (::: note) and the
blockquote callout syntax (> [!note]).

Types, icons, and the fence marker are configurable through
.mdcallout.yml files or command-line flags.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newTypesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
