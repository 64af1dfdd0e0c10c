package foamslides

import (
	"fmt"
	"io"
	"os"

	"github.com/dasdy/foamslides/deck"
	"github.com/spf13/cobra"
)

var outlinePath string

// outlineCmd represents the outline command.
var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the deck outline as YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		slides, _, err := buildSlides(cmd.Context())
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()

		if outlinePath != "-" {
			f, err := os.Create(outlinePath)
			if err != nil {
				return fmt.Errorf("could not create %s: %w", outlinePath, err)
			}
			defer f.Close()

			w = f
		}

		return deck.WriteOutline(w, slides)
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineCmd.Flags().StringVarP(&outlinePath, "out", "o", "-", "Output file, - for stdout")
}
