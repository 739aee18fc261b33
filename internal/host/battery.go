package host

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultPowerSupplyDir is where Linux exposes batteries.
const DefaultPowerSupplyDir = "/sys/class/power_supply"

// FullCharge is reported when no battery is present.
const FullCharge = 100

// BatterySource reports the current charge in percent.
type BatterySource interface {
	Percent() int
}

// BatteryReader reads the charge from sysfs.
type BatteryReader struct {
	Dir string
	Log hclog.Logger
}

// Percent returns the capacity of the first battery, or FullCharge when none is found.
func (b BatteryReader) Percent() int {
	dir := b.Dir
	if dir == "" {
		dir = DefaultPowerSupplyDir
	}
	logger := b.Log
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	paths, _ := filepath.Glob(filepath.Join(dir, "*", "capacity"))
	sort.Strings(paths)
	for _, p := range paths {
		if kind, err := readTrimmed(filepath.Join(filepath.Dir(p), "type")); err == nil && kind != "Battery" {
			continue
		}
		raw, err := readTrimmed(p)
		if err != nil {
			logger.Debug("battery unreadable", "path", p, "error", err)
			continue
		}
		pct, err := strconv.Atoi(raw)
		if err != nil {
			logger.Debug("battery capacity not a number", "path", p, "value", raw)
			continue
		}
		return clampPercent(pct)
	}
	return FullCharge
}

// StaticBattery always reports the same charge.
type StaticBattery int

// Percent implements BatterySource.
func (s StaticBattery) Percent() int { return clampPercent(int(s)) }

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
