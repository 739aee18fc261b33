package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/gcolor"
	"github.com/isabelacmor/hexwatch/internal/hexcolor"
)

// colorReport is the output of the color command.
type colorReport struct {
	Digits    string  `json:"digits"`
	Hex       string  `json:"hex"`
	R         uint8   `json:"r"`
	G         uint8   `json:"g"`
	B         uint8   `json:"b"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
	Accent    string  `json:"accent"`
	Device    string  `json:"device"`
	Name      string  `json:"name"`
}

func newColorCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "color [HHMMSS]",
		Short: "Show the colour for a time",
		Long: `Show the background colour, contrast score and accent for a time.

Without an argument the current time (or --at) is used.

Examples:
  hexwatch color
  hexwatch color 09:26:53
  hexwatch color 235959 --variant tap --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.faceOptions()
			if err != nil {
				return err
			}

			var digits hexcolor.ClockDigits
			if len(args) == 1 {
				digits, err = hexcolor.ParseDigits(args[0])
			} else {
				t, werr := a.when()
				if werr != nil {
					return werr
				}
				digits = hexcolor.DigitsFromTime(t, opts.Use24Hour)
			}
			if err != nil {
				return err
			}

			bg := digits.Triple()
			accent := opts.Classifier.Classify(bg)
			report := colorReport{
				Digits:    digits.String(),
				Hex:       bg.Hex(),
				R:         bg.R,
				G:         bg.G,
				B:         bg.B,
				Score:     opts.Classifier.Score(bg),
				Threshold: opts.Classifier.Threshold,
				Accent:    accent.String(),
				Device:    gcolor.FromRGB(bg).String(),
				Name:      gcolor.NameOf(bg),
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			rows := [][2]string{
				{"digits", report.Digits},
				{"hex", report.Hex},
				{"rgb", bg.String()},
				{"score", fmt.Sprintf("%.3f (%s, threshold %.2f)", report.Score, opts.Classifier.Scale, report.Threshold)},
				{"accent", fmt.Sprintf("%s %s", report.Accent, face.AccentColor(accent).Hex())},
				{"device", report.Device},
				{"name", strings.ToUpper(report.Name)},
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%-7s %s\n", r[0], r[1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
