package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdcallout/internal/logging"
	"github.com/yaklabco/mdcallout/internal/ui/pretty"
	"github.com/yaklabco/mdcallout/pkg/admonition"
	"github.com/yaklabco/mdcallout/pkg/fsutil"
	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

type tokensFlags struct {
	styleFlags
	width int
}

func newTokensCommand() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the block token stream for a Markdown file",
		Long: `Tokenize a Markdown file and print the resulting block token
stream as a table. Useful for debugging how admonition blocks nest.

Reads from stdin when no file is given or when the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, flags)
		},
	}

	addStyleFlags(cmd, &flags.styleFlags)
	cmd.Flags().IntVar(&flags.width, "width", 0,
		"table width (default: terminal width)")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, flags *tokensFlags) error {
	logger := logging.Default()

	cfg, err := resolveConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	source, err := fsutil.ReadSource(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ext, err := admonition.New(cfg.Options())
	if err != nil {
		return err
	}
	parser := mdtok.New()
	if err := ext.Attach(parser); err != nil {
		return err
	}

	tokens := parser.Parse(source)
	logger.Debug("tokenized",
		logging.FieldInput, displayPath(path),
		logging.FieldTokens, len(tokens),
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	colorEnabled := pretty.IsColorEnabled(colorMode, cmd.OutOrStdout())
	styles := pretty.NewStyles(colorEnabled)

	formatter := pretty.NewTokenFormatter(styles, tableWidth(flags.width, cmd))
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTokens(tokens))

	return nil
}

// tableWidth resolves the table width from the flag or the terminal.
func tableWidth(flagWidth int, cmd *cobra.Command) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 0
}
