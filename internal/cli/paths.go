package cli

import (
	"fmt"

	"github.com/MKhiriev/go-utils/internal/document"
	"github.com/spf13/cobra"
)

func newPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths FILE",
		Short: "List the dotted paths of a document",
		Long: `Paths prints every dotted path of a JSON or TOML document together
with the kind of value it addresses (composite, sequence or leaf).
These are the paths a strategy file can pin.

Example:
  confmerge paths base.json
  confmerge paths settings.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return fmt.Errorf("error loading document: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, info := range document.Paths(doc) {
				fmt.Fprintf(out, "%-9s  %s\n", info.Kind, info.Path)
			}

			return nil
		},
	}
}
