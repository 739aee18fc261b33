package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/isabelacmor/hexwatch/internal/render"
)

// asciiChrome is the width taken by the row labels and borders.
const asciiChrome = 6

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show an ASCII preview of the face",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.when()
			if err != nil {
				return err
			}
			profile := a.cfg.Profile()
			f, frame, err := a.renderAt(t, profile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			maxWidth := fitWidth(out)
			fmt.Fprintf(out, "%s %dx%d at %s, background %s (%s text)\n\n",
				profile.Name, frame.Width, frame.Height, t.Format("15:04:05"), f.Color().Hex(), f.Accent())
			if err := render.WriteASCII(out, frame, maxWidth); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.ASCIILegend)
			return nil
		},
	}
}

func newSnapshotCmd(a *app) *cobra.Command {
	var (
		output string
		scale  int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the face to a PNG file",
		Long: `Render the face to a PNG file.

Examples:
  hexwatch snapshot -o face.png
  hexwatch snapshot --at 12:34:56 --profile pixoo64 --scale 8 -o pixoo.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("--scale must be at least 1")
			}
			t, err := a.when()
			if err != nil {
				return err
			}
			_, frame, err := a.renderAt(t, a.cfg.Profile())
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := render.EncodePNG(file, frame, scale); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			a.logger.Info("snapshot written", "path", output, "width", frame.Width*scale, "height", frame.Height*scale)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "hexwatch.png", "output file")
	cmd.Flags().IntVar(&scale, "scale", 4, "pixel scale factor")
	return cmd
}

// fitWidth returns the frame width that fits the terminal behind w, or 0 when w is
// not a terminal.
func fitWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > asciiChrome {
		return cols - asciiChrome
	}
	return 0
}
