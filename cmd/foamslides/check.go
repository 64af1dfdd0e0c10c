package foamslides

import (
	"errors"
	"fmt"

	"github.com/dasdy/foamslides/assets"
	"github.com/dasdy/foamslides/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errCheckFailed = errors.New("check failed")

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the theme and the assets",
	Long:  `Report every missing asset and theme problem. Exits non-zero when any is found.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		problems := 0

		if _, err := config.LoadTheme(viper.GetViper()); err != nil {
			fmt.Fprintf(out, "theme: %s\n", err)

			problems++
		}

		res, err := assets.Dir(assetsDir)
		if err != nil {
			return err
		}

		for _, name := range res.Missing(assets.Required()...) {
			fmt.Fprintf(out, "missing: %s\n", name)

			problems++
		}

		for _, name := range assets.Required() {
			if !res.Exists(name) {
				continue
			}

			if _, _, err := res.ImageSize(name); err != nil {
				fmt.Fprintf(out, "unreadable: %s: %s\n", name, err)

				problems++
			}
		}

		if problems > 0 {
			return fmt.Errorf("%w: %d problem(s)", errCheckFailed, problems)
		}

		fmt.Fprintln(out, "ok")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
