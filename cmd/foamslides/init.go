package foamslides

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const exampleConfig = `# foamslides configuration. Flags override these values.
assets = "."
stepwise = false

[theme]
main = "#ACEAD7"
background = "#222222"

[theme.sizes]
big = 25
mid = 20

[theme.code]
style = "manni"
`

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("config file %s already exists", cfgFile)
		}

		if err := os.WriteFile(cfgFile, []byte(exampleConfig), 0o644); err != nil {
			return fmt.Errorf("could not create example config: %w", err)
		}

		slog.Info("Example config file created", "path", cfgFile)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
