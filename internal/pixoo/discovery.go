package pixoo

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ProbeTimeout bounds each per-address probe during a scan.
const ProbeTimeout = 500 * time.Millisecond

// DiscoveredDevice represents a found Pixoo device.
type DiscoveredDevice struct {
	Name string
	IP   string
}

// ProgressFunc is called during scanning to report progress.
type ProgressFunc func(current, total int)

// ScanOptions configure ScanForDevices.
type ScanOptions struct {
	// Subnet is the first three octets ("192.168.1") or a /24 CIDR.
	// Empty means the first non-loopback IPv4 interface.
	Subnet     string
	Port       int
	OnProgress ProgressFunc
	Logger     hclog.Logger
}

// ScanForDevices scans a /24 for Pixoo devices.
func ScanForDevices(ctx context.Context, opts ScanOptions) ([]DiscoveredDevice, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("scan")

	subnet := opts.Subnet
	var err error
	if subnet == "" {
		subnet, err = getLocalSubnet()
	} else {
		subnet, err = parseSubnet(subnet)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("scanning", "subnet", subnet+".0/24")

	var devices []DiscoveredDevice
	var mu sync.Mutex
	var wg sync.WaitGroup

	// Scan in batches of 50 concurrent probes
	batchSize := 50
	total := 254

	for start := 1; start <= total; start += batchSize {
		end := start + batchSize - 1
		if end > total {
			end = total
		}

		for i := start; i <= end; i++ {
			wg.Add(1)
			go func(ip string) {
				defer wg.Done()

				device := probePixoo(ctx, ip, opts.Port)
				if device != nil {
					logger.Info("found device", "ip", ip)
					mu.Lock()
					devices = append(devices, *device)
					mu.Unlock()
				}
			}(fmt.Sprintf("%s.%d", subnet, i))
		}

		wg.Wait()

		if opts.OnProgress != nil {
			opts.OnProgress(end, total)
		}

		select {
		case <-ctx.Done():
			return devices, ctx.Err()
		default:
		}
	}

	return devices, nil
}

// parseSubnet normalises "a.b.c", "a.b.c.d" or "a.b.c.d/24" to "a.b.c".
func parseSubnet(s string) (string, error) {
	if ip, ipNet, err := net.ParseCIDR(s); err == nil {
		if ones, _ := ipNet.Mask.Size(); ones != 24 || ip.To4() == nil {
			return "", fmt.Errorf("subnet %q: only IPv4 /24 networks can be scanned", s)
		}
		s = ip.String()
	}

	parts := strings.Split(s, ".")
	if len(parts) == 3 {
		parts = append(parts, "0")
	}
	ip := net.ParseIP(strings.Join(parts, ".")).To4()
	if len(parts) != 4 || ip == nil {
		return "", fmt.Errorf("subnet %q: want a.b.c or a.b.c.0/24", s)
	}
	return fmt.Sprintf("%d.%d.%d", ip[0], ip[1], ip[2]), nil
}

// getLocalSubnet returns the local subnet (e.g., "192.168.1").
func getLocalSubnet() (string, error) {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to get network interfaces: %w", err)
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			ip := ipNet.IP.To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}

			return fmt.Sprintf("%d.%d.%d", ip[0], ip[1], ip[2]), nil
		}
	}

	return "", fmt.Errorf("could not determine local network")
}

// probePixoo checks if an IP hosts a Pixoo device.
func probePixoo(ctx context.Context, ip string, port int) *DiscoveredDevice {
	client := NewClient(ip, Options{Port: port, Timeout: ProbeTimeout})

	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	_, err := client.sendCommand(probeCtx, PixooCommand{Command: "Channel/GetIndex"})
	if err != nil {
		return nil
	}

	return &DiscoveredDevice{
		Name: "Pixoo",
		IP:   ip,
	}
}
