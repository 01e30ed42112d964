package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdcallout/internal/ui/pretty"
	"github.com/yaklabco/mdcallout/pkg/admonition"
)

const formatJSON = "json"

type typesFlags struct {
	styleFlags
	format string
}

// typeInfo represents a registered type in JSON output.
type typeInfo struct {
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	OpenKind  string `json:"open_kind"`
	CloseKind string `json:"close_kind"`
}

func newTypesCommand() *cobra.Command {
	flags := &typesFlags{}

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List recognized admonition types",
		Long: `List the admonition types the current configuration recognizes,
with their icons and the token kinds they emit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags.cliConfig(cmd))
			if err != nil {
				return err
			}

			ext, err := admonition.New(cfg.Options())
			if err != nil {
				return err
			}
			types := ext.Registry().Types()

			if flags.format == formatJSON {
				return outputTypesJSON(cmd, types)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
			fmt.Fprint(cmd.OutOrStdout(), pretty.FormatTypes(styles, types))

			return nil
		},
	}

	addStyleFlags(cmd, &flags.styleFlags)
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputTypesJSON outputs registered types as a JSON array.
func outputTypesJSON(cmd *cobra.Command, types []*admonition.Type) error {
	infos := make([]typeInfo, 0, len(types))
	for _, typ := range types {
		infos = append(infos, typeInfo{
			Name:      typ.Name,
			Icon:      typ.Icon,
			OpenKind:  typ.OpenKind,
			CloseKind: typ.CloseKind,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(infos); err != nil {
		return fmt.Errorf("encode types: %w", err)
	}
	return nil
}
