package pixoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// DefaultPort is the default Pixoo HTTP API port.
const DefaultPort = 80

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 5 * time.Second

// MaxPicID is the highest animation id used before the device counter is reset.
const MaxPicID = 32

// ErrFrameSize is returned for frames that are not 64x64.
var ErrFrameSize = errors.New("pixoo: frame must be 64x64")

// StatusError is returned when the device answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pixoo: unexpected status code: %d, body: %s", e.StatusCode, e.Body)
}

// DeviceError is returned when the device reports a non-zero error_code.
type DeviceError struct {
	Code int
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("pixoo: device error_code %d", e.Code)
}

// Options configure a Client. Zero values use the defaults.
type Options struct {
	Port    int
	Timeout time.Duration
	Logger  hclog.Logger
}

// Client is an HTTP client for communicating with Pixoo devices.
type Client struct {
	IP         string
	Port       int
	HTTPClient *http.Client
	log        hclog.Logger
	testURL    string // For testing with httptest

	mu    sync.Mutex
	picID int
}

// NewClient creates a new Pixoo client.
func NewClient(ip string, opts Options) *Client {
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		IP:   ip,
		Port: opts.Port,
		HTTPClient: &http.Client{
			Timeout: opts.Timeout,
		},
		log: logger.Named("pixoo").With("ip", ip),
	}
}

// Endpoint returns the full API endpoint URL.
func (c *Client) Endpoint() string {
	if c.testURL != "" {
		return c.testURL
	}
	return fmt.Sprintf("http://%s:%d/post", c.IP, c.Port)
}

// sendCommand sends a command to the Pixoo device.
func (c *Client) sendCommand(ctx context.Context, command any) ([]byte, error) {
	data, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Response
	if len(body) > 0 && json.Unmarshal(body, &result) == nil && result.ErrorCode != 0 {
		return nil, &DeviceError{Code: result.ErrorCode}
	}

	return body, nil
}

// SendFrame sends a frame to the Pixoo device.
func (c *Client) SendFrame(ctx context.Context, frame *domain.Frame, opts *FrameCommandOptions) error {
	if frame.Width != ScreenSize || frame.Height != ScreenSize {
		return fmt.Errorf("%w: got %dx%d", ErrFrameSize, frame.Width, frame.Height)
	}
	cmd := CreatePixooFrameCommand(frame, opts)
	_, err := c.sendCommand(ctx, cmd)
	return err
}

// Present pushes the frame as the next animation id, resetting the device
// counter first when it wraps.
func (c *Client) Present(ctx context.Context, frame *domain.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.picID == 0 || c.picID >= MaxPicID {
		if _, err := c.sendCommand(ctx, CreateResetGifIDCommand()); err != nil {
			return fmt.Errorf("reset animation id: %w", err)
		}
		c.picID = 0
	}
	c.picID++

	start := time.Now()
	if err := c.SendFrame(ctx, frame, &FrameCommandOptions{PicID: c.picID}); err != nil {
		return err
	}
	c.log.Trace("frame sent", "pic_id", c.picID, "elapsed", time.Since(start))
	return nil
}

// GetDeviceTime queries the device time.
func (c *Client) GetDeviceTime(ctx context.Context) ([]byte, error) {
	cmd := CreateDeviceTimeCommand()
	return c.sendCommand(ctx, cmd)
}

// SetBrightness sets the display brightness (0-100).
func (c *Client) SetBrightness(ctx context.Context, brightness int) error {
	cmd := CreateBrightnessCommand(brightness)
	_, err := c.sendCommand(ctx, cmd)
	return err
}

// IsReachable checks if the device is reachable.
func (c *Client) IsReachable(ctx context.Context) bool {
	_, err := c.GetDeviceTime(ctx)
	if err != nil {
		c.log.Debug("device unreachable", "error", err)
	}
	return err == nil
}
