package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/godof/i18n"
)

func newShowCommand(o *options) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the canonical form of a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			doc, err := parseFile(ctx, args[0], o.cfg.parseOpt())
			if err != nil {
				for _, line := range describe(i18n.ForLanguage(o.cfg.Lang), err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", args[0], line)
				}
				return fmt.Errorf("%s: invalid layout", args[0])
			}

			var out []byte
			if asYAML {
				out, err = yaml.Marshal(doc)
			} else {
				out, err = json.MarshalIndent(doc, "", "  ")
				out = append(out, '\n')
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}

			combos := 0
			for _, l := range doc.ComboLayers() {
				combos += len(doc.Combos(l))
			}
			logger.Info("layout", "name", doc.Name(), "board", doc.Board().Type(), "shape", doc.Shape().String(),
				"layers", len(doc.LayerNames()), "combos", combos, "generated_shift", doc.GeneratedShift())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	return cmd
}
