// Package storage remembers the Pixoo devices hexwatch has found or driven.
// Face state is never stored.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Store is the interface for the device registry.
type Store interface {
	SaveDevice(ctx context.Context, device *Device) error
	GetDevice(ctx context.Context, id string) (*Device, error)
	GetDevices(ctx context.Context) ([]*Device, error)
	// LastSeenDevice returns the device seen most recently.
	LastSeenDevice(ctx context.Context) (*Device, error)
	// TouchDevice records that the device at ip answered at t.
	TouchDevice(ctx context.Context, ip string, t time.Time) error
	DeleteDevice(ctx context.Context, id string) error

	Close() error
}

// Device represents a stored Pixoo device. The IP doubles as the ID.
type Device struct {
	ID        string
	IP        string
	Name      string
	Type      string
	CreatedAt time.Time
	LastSeen  time.Time
}

// NewDevice creates a device record seen now.
func NewDevice(ip, name, deviceType string) *Device {
	now := time.Now()
	return &Device{
		ID:        ip,
		IP:        ip,
		Name:      name,
		Type:      deviceType,
		CreatedAt: now,
		LastSeen:  now,
	}
}

// ErrNotFound is returned when a resource is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no %s found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}
