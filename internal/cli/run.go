package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/isabelacmor/hexwatch/internal/tui"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the face in the terminal",
		Long: `Run the face in the terminal.

Keys:
  space, t   tap (shows seconds for a few seconds in the tap variant)
  q          quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.faceOptions()
			if err != nil {
				return err
			}
			model := tui.New(tui.Options{Face: opts, Battery: a.battery()})
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
