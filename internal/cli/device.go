package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/host"
	"github.com/isabelacmor/hexwatch/internal/pixoo"
	"github.com/isabelacmor/hexwatch/internal/render"
	"github.com/isabelacmor/hexwatch/internal/storage"
	"github.com/isabelacmor/hexwatch/internal/storage/sqlite"
)

// openRegistry opens the device database. It returns nil when the registry is off.
func (a *app) openRegistry() (storage.Store, error) {
	path := a.cfg.RegistryPath()
	if path == "" {
		return nil, nil
	}
	store, err := sqlite.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("open device registry %s: %w", path, err)
	}
	return store, nil
}

// deviceIP picks the address from the argument, the config, then the last device seen.
func (a *app) deviceIP(ctx context.Context, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if a.cfg.Pixoo.IP != "" {
		return a.cfg.Pixoo.IP, nil
	}

	store, err := a.openRegistry()
	if err != nil {
		a.logger.Warn("device registry unavailable", "error", err)
	}
	if store != nil {
		defer store.Close()
		device, err := store.LastSeenDevice(ctx)
		if err == nil {
			a.logger.Debug("using last seen device", "ip", device.IP, "last_seen", device.LastSeen)
			return device.IP, nil
		}
		if !storage.IsNotFound(err) {
			a.logger.Warn("device registry lookup failed", "error", err)
		}
	}
	return "", fmt.Errorf("IP address required (argument, pixoo.ip in the config, or run scan first)")
}

// remember marks ip as seen now. Registry failures are logged, not returned.
func (a *app) remember(ctx context.Context, ip string) {
	store, err := a.openRegistry()
	if err != nil {
		a.logger.Warn("device registry unavailable", "error", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()
	if err := store.TouchDevice(ctx, ip, a.now()); err != nil {
		a.logger.Warn("failed to record device", "ip", ip, "error", err)
	}
}

// connect returns a client for a reachable device with the configured brightness applied.
func (a *app) connect(ctx context.Context, ip string) (*pixoo.Client, error) {
	client := pixoo.NewClient(ip, a.cfg.PixooOptions(a.logger))

	probeCtx, cancel := context.WithTimeout(ctx, a.cfg.Pixoo.Timeout)
	defer cancel()
	if !client.IsReachable(probeCtx) {
		return nil, fmt.Errorf("cannot reach Pixoo at %s; check the IP and that the device is powered on", ip)
	}

	if b := a.cfg.Pixoo.Brightness; b != nil {
		if err := client.SetBrightness(probeCtx, *b); err != nil {
			return nil, fmt.Errorf("set brightness: %w", err)
		}
	}
	return client, nil
}

// dryRunCommand is what send --dry-run prints instead of posting.
type dryRunCommand struct {
	Endpoint string `json:"endpoint"`
	Command  string `json:"Command"`
	PicWidth int    `json:"PicWidth"`
	PicID    int    `json:"PicID"`
	PicSpeed int    `json:"PicSpeed"`
	PicBytes int    `json:"PicDataLength"`
}

func newSendCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "send [ip]",
		Short: "Render the face once and push it to a Pixoo64",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, err := a.deviceIP(cmd.Context(), args)
			if err != nil {
				return err
			}
			t, err := a.when()
			if err != nil {
				return err
			}
			_, frame, err := a.renderAt(t, domain.ProfilePixoo64)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				c := pixoo.CreatePixooFrameCommand(frame, nil)
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dryRunCommand{
					Endpoint: pixoo.NewClient(ip, a.cfg.PixooOptions(nil)).Endpoint(),
					Command:  c.Command,
					PicWidth: c.PicWidth,
					PicID:    c.PicID,
					PicSpeed: c.PicSpeed,
					PicBytes: len(c.PicData),
				})
			}

			client, err := a.connect(cmd.Context(), ip)
			if err != nil {
				return err
			}
			a.remember(cmd.Context(), ip)
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Pixoo.Timeout)
			defer cancel()
			if err := client.Present(ctx, frame); err != nil {
				return fmt.Errorf("send frame: %w", err)
			}
			fmt.Fprintf(out, "Frame sent to %s\n", ip)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the device command instead of sending it")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var batteryInterval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [ip]",
		Short: "Run the face on a Pixoo64",
		Long: `Run the face on a Pixoo64, pushing a frame on every change.

Press Enter to tap. Ctrl+C stops.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip, err := a.deviceIP(cmd.Context(), args)
			if err != nil {
				return err
			}
			opts, err := a.faceOptions()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := a.connect(ctx, ip)
			if err != nil {
				return err
			}
			a.remember(ctx, ip)

			timeout := a.cfg.Pixoo.Timeout
			presenter := host.PresenterFunc(func(ctx context.Context, frame *domain.Frame) error {
				ctx, cancel := context.WithTimeout(ctx, timeout)
				defer cancel()
				return client.Present(ctx, frame)
			})

			loop := host.NewLoop(presenter, host.LoopOptions{
				Face:            opts,
				Layout:          render.LayoutFor(domain.ProfilePixoo64),
				Render:          a.cfg.RenderOptions(),
				Battery:         a.battery(),
				BatteryInterval: batteryInterval,
				Logger:          a.logger,
			})
			go forwardTaps(cmd.InOrStdin(), loop)

			fmt.Fprintf(cmd.OutOrStdout(), "Watching on %s (%s variant). Enter taps, Ctrl+C stops.\n", ip, opts.Variant)
			return loop.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&batteryInterval, "battery-interval", host.DefaultBatteryInterval, "how often to re-read the battery")
	return cmd
}

// forwardTaps turns each input line into a tap until the reader ends.
func forwardTaps(r io.Reader, loop *host.Loop) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		loop.Tap()
	}
}

func newScanCmd(a *app) *cobra.Command {
	var (
		subnet  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the local network for Pixoo devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			fmt.Fprintln(out, "Scanning for Pixoo devices on local network...")

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			devices, err := pixoo.ScanForDevices(ctx, pixoo.ScanOptions{
				Subnet: subnet,
				Port:   a.cfg.Pixoo.Port,
				Logger: a.logger,
				OnProgress: func(current, total int) {
					pct := current * 100 / total
					bar := strings.Repeat("█", pct/5) + strings.Repeat("░", 20-pct/5)
					fmt.Fprintf(errOut, "\r  [%s] %d%% (%d/%d)", bar, pct, current, total)
				},
			})
			fmt.Fprintln(errOut)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}

			if len(devices) == 0 {
				fmt.Fprintln(out, "No Pixoo devices found.")
				fmt.Fprintln(out, "Make sure the Pixoo is powered on, on the same WiFi network and not asleep.")
				return nil
			}

			fmt.Fprintf(out, "Found %d device(s):\n", len(devices))
			for i, device := range devices {
				fmt.Fprintf(out, "  %d. %s - %s\n", i+1, device.Name, device.IP)
			}
			if err := a.saveDevices(cmd.Context(), devices); err != nil {
				a.logger.Warn("failed to save scanned devices", "error", err)
			}
			fmt.Fprintf(out, "\nTo start the face:\n  hexwatch watch %s\n", devices[0].IP)
			return nil
		},
	}

	cmd.Flags().StringVar(&subnet, "subnet", "", "subnet to scan, a.b.c or a.b.c.0/24 (default: first local interface)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall scan timeout")
	return cmd
}

func (a *app) saveDevices(ctx context.Context, found []pixoo.DiscoveredDevice) error {
	store, err := a.openRegistry()
	if err != nil || store == nil {
		return err
	}
	defer store.Close()

	for _, d := range found {
		device := storage.NewDevice(d.IP, d.Name, "pixoo64")
		device.CreatedAt, device.LastSeen = a.now(), a.now()
		if err := store.SaveDevice(ctx, device); err != nil {
			return err
		}
	}
	return nil
}

func newDevicesCmd(a *app) *cobra.Command {
	var forget string

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List the Pixoo devices hexwatch remembers",
		Long: `List the Pixoo devices hexwatch remembers.

scan records every device it finds and send/watch record the device they drive, so
either can later run without an IP. Only device addresses are stored; the face keeps
no state. Set pixoo.registry: off in the config to disable the registry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			store, err := a.openRegistry()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(out, "Device registry is off (pixoo.registry: off).")
				return nil
			}
			defer store.Close()

			if forget != "" {
				if _, err := store.GetDevice(cmd.Context(), forget); err != nil {
					return fmt.Errorf("forget %s: %w", forget, err)
				}
				if err := store.DeleteDevice(cmd.Context(), forget); err != nil {
					return fmt.Errorf("forget %s: %w", forget, err)
				}
				fmt.Fprintf(out, "Forgot %s\n", forget)
				return nil
			}

			devices, err := store.GetDevices(cmd.Context())
			if err != nil {
				return fmt.Errorf("list devices: %w", err)
			}
			if len(devices) == 0 {
				fmt.Fprintln(out, "No devices remembered. Run hexwatch scan to find one.")
				return nil
			}
			for _, d := range devices {
				fmt.Fprintf(out, "%-15s %-12s last seen %s\n", d.IP, d.Name, d.LastSeen.Local().Format(time.DateTime))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&forget, "forget", "", "remove the device with this IP")
	return cmd
}
