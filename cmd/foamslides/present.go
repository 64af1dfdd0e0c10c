package foamslides

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dasdy/foamslides/present"
	"github.com/dasdy/foamslides/remote"
	"github.com/dasdy/foamslides/tui"
	"github.com/spf13/cobra"
)

// presentCmd represents the present command.
var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Present the deck in the terminal",
	Long:  `Show the slides' text, code and image placeholders in the terminal. Clickers given with -f or --watch move the slides too.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		slides, cfg, err := buildSlides(ctx)
		if err != nil {
			return err
		}

		nav, err := present.NewNavigator(len(slides))
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.New(slides, nav, cfg.Theme), tea.WithAltScreen(), tea.WithContext(ctx))

		// Send blocks until the program reads the message, and the model itself
		// moves the navigator from inside Update.
		nav.OnChange(func(_, to int) {
			go p.Send(tui.NavigatedMsg{Index: to})
		})

		if len(filenames) > 0 || watchDevices {
			lines, closer, err := openClickers(cmd)
			if err != nil {
				return err
			}
			defer closer()

			go remote.Loop(ctx, lines, nav)
		}

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("could not run terminal presentation: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(presentCmd)

	presentCmd.Flags().StringSliceVarP(&filenames, "file", "f", []string{}, "Clicker devices to follow")
	presentCmd.Flags().BoolVar(&watchDevices, "watch", false, "Look for clickers to follow")
}
