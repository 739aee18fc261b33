// Package cli provides the command-line interface for hexwatch.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/isabelacmor/hexwatch/internal/config"
	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/host"
	"github.com/isabelacmor/hexwatch/internal/log"
	"github.com/isabelacmor/hexwatch/internal/render"
	"github.com/isabelacmor/hexwatch/internal/version"
)

// app holds the state shared by every command.
type app struct {
	configPath string
	at         string
	logLevel   string
	variant    *enumValue
	clock      *enumValue
	profile    *enumValue
	scale      *enumValue
	dither     bool
	quantize   bool
	colorName  bool

	cfg    *config.Config
	logger hclog.Logger
	now    func() time.Time
}

// NewRootCmd builds the hexwatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		variant: newEnum("tick", "tick", "tap"),
		clock:   newEnum(config.Clock24h, config.Clock12h, config.Clock24h),
		profile: newEnum(domain.ProfileBasalt.Name, profileNames()...),
		scale:   newEnum("raw", "raw", "gcolor8"),
		now:     time.Now,
	}

	root := &cobra.Command{
		Use:   "hexwatch",
		Short: "A watch face that turns the time into a colour",
		Long: `hexwatch reads the time HH:MM:SS as the hex colour #HHMMSS and paints it
behind the clock. Text switches between white and dark grey to stay readable.

The face runs in the terminal, renders to PNG or ASCII, and drives a Divoom
Pixoo64 over the local network.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate(version.String() + "\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (default $"+config.EnvConfigPath+" or the user config dir)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	pf.Var(a.variant, "variant", a.variant.usage("face variant"))
	pf.Var(a.clock, "clock", a.clock.usage("clock style"))
	pf.Var(a.profile, "profile", a.profile.usage("display profile"))
	pf.Var(a.scale, "luminance-scale", a.scale.usage("contrast score scale"))
	pf.BoolVar(&a.dither, "dither", false, "dither the background onto the 64-colour palette")
	pf.BoolVar(&a.quantize, "quantize", false, "snap colours to the 64-colour palette")
	pf.BoolVar(&a.colorName, "color-name", false, "show the nearest named colour")
	pf.StringVar(&a.at, "at", "", "render this time of day (HH:MM:SS) instead of now")

	root.AddCommand(
		newColorCmd(a),
		newPreviewCmd(a),
		newSnapshotCmd(a),
		newRunCmd(a),
		newSendCmd(a),
		newWatchCmd(a),
		newScanCmd(a),
		newDevicesCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func profileNames() []string {
	names := make([]string, 0, len(domain.Profiles))
	for _, p := range domain.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if path := config.Discover(a.configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if changed(fs, "variant") {
		cfg.Face.Variant = a.variant.String()
	}
	if changed(fs, "clock") {
		cfg.Face.Clock = a.clock.String()
	}
	if changed(fs, "profile") {
		cfg.Display.Profile = a.profile.String()
	}
	if changed(fs, "luminance-scale") {
		cfg.Face.LuminanceScale = a.scale.String()
	}
	if changed(fs, "dither") {
		cfg.Display.Dither = a.dither
	}
	if changed(fs, "quantize") {
		cfg.Display.Quantize = a.quantize
	}
	if changed(fs, "color-name") {
		cfg.Face.ShowColorName = a.colorName
	}
	if changed(fs, "log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.New(cfg.LogOptions(cmd.ErrOrStderr()))
	return nil
}

// when returns the time to render: --at on today's date, or now.
func (a *app) when() (time.Time, error) {
	now := a.now()
	if a.at == "" {
		return now, nil
	}
	t, err := time.ParseInLocation("15:04:05", a.at, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("--at %q: want HH:MM:SS", a.at)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
}

func (a *app) faceOptions() (face.Options, error) {
	return a.cfg.FaceOptions(a.logger)
}

func (a *app) battery() host.BatterySource {
	return host.BatteryReader{Log: a.logger}
}

// idleTicks satisfies face.TickService for one-shot renders.
type idleTicks struct{}

func (idleTicks) Subscribe(face.TickUnit) {}
func (idleTicks) Unsubscribe()            {}

// renderAt loads a face at t and renders it for profile.
func (a *app) renderAt(t time.Time, profile domain.Profile) (*face.Face, *domain.Frame, error) {
	opts, err := a.faceOptions()
	if err != nil {
		return nil, nil, err
	}
	surface := face.NewSurface()
	f := face.New(surface, idleTicks{}, opts)
	f.Load(t, a.battery().Percent())
	frame := render.Compose(surface, render.LayoutFor(profile), a.cfg.RenderOptions())
	return f, frame, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
