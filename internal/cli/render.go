package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/yaklabco/mdcallout/internal/logging"
	"github.com/yaklabco/mdcallout/pkg/admonition"
	"github.com/yaklabco/mdcallout/pkg/config"
	"github.com/yaklabco/mdcallout/pkg/fsutil"
	"github.com/yaklabco/mdcallout/pkg/goldmarkadm"
	"github.com/yaklabco/mdcallout/pkg/mdtok"
)

type renderFlags struct {
	styleFlags
	engine string
	output string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a Markdown file to HTML",
		Long: `Render a Markdown file to HTML, expanding admonition blocks.

Reads from stdin when no file is given or when the file is "-".

Examples:
  mdcallout render README.md             # Render to stdout
  mdcallout render README.md -o out.html # Render to a file
  cat doc.md | mdcallout render          # Render stdin
  mdcallout render --engine goldmark doc.md
  mdcallout render --marker '!' --type note --type custom doc.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	addStyleFlags(cmd, &flags.styleFlags)
	cmd.Flags().StringVar(&flags.engine, "engine", string(config.EngineNative),
		"rendering engine: native, goldmark")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	cliCfg := flags.cliConfig(cmd)
	cliCfg.Engine = config.Engine(flags.engine)
	cliCfg.Output = flags.output

	cfg, err := resolveConfig(cmd, cliCfg)
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

	logger.Debug("rendering",
		logging.FieldInput, displayPath(path),
		logging.FieldBytes, len(source),
		logging.FieldEngine, cfg.Engine,
	)

	html, err := renderHTML(cfg, source)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fsutil.WriteAtomic(ctx, cfg.Output, []byte(html), 0); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote output",
		logging.FieldOutput, cfg.Output,
		logging.FieldBytes, len(html),
	)

	return nil
}

// renderHTML renders source through the configured engine.
func renderHTML(cfg *config.Config, source []byte) (string, error) {
	switch cfg.Engine {
	case config.EngineGoldmark:
		ext, err := goldmarkadm.New(cfg.Options())
		if err != nil {
			return "", err
		}
		md := goldmark.New(goldmark.WithExtensions(ext))

		var buf bytes.Buffer
		if err := md.Convert(source, &buf); err != nil {
			return "", fmt.Errorf("convert markdown: %w", err)
		}
		return buf.String(), nil

	default:
		ext, err := admonition.New(cfg.Options())
		if err != nil {
			return "", err
		}
		parser := mdtok.New()
		if err := ext.Attach(parser); err != nil {
			return "", err
		}
		return parser.Render(source), nil
	}
}

// displayPath names the input source for log output.
func displayPath(path string) string {
	if path == "" || path == fsutil.StdinPath {
		return "stdin"
	}
	return path
}
