package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"worddumb/internal/logging"
)

const (
	// KindlePackage is the Kindle Android app's package name.
	KindlePackage = "com.amazon.kindle"
	// KindlePackageCN is the China-region alternate package name.
	KindlePackageCN = "com.amazon.kindlefc"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stdout, stderr string, err error)
}

// CommandError reports a failed adb invocation together with the captured
// standard error, which callers surface to the user verbatim.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("adb %s: %v", strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "adb")
	}
}

// Client wraps adb CLI interactions.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
	logger  *slog.Logger
}

// Find locates the adb executable, honoring an optional override.
func Find(override string) (string, error) {
	binary := strings.TrimSpace(override)
	if binary == "" {
		binary = "adb"
	}
	return exec.LookPath(binary)
}

// New constructs an adb client. A zero timeout blocks until the device
// answers, mirroring the historical behavior of the transfer path.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("adb binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Connected reports whether a device answers the devices command.
func (c *Client) Connected(ctx context.Context) (bool, error) {
	out, err := c.run(ctx, "devices")
	if err != nil {
		return false, err
	}
	return strings.HasSuffix(strings.TrimSpace(out), "device"), nil
}

// PackageName queries the installed Kindle app package, handling the
// region-specific alternate name. An empty string means not installed.
func (c *Client) PackageName(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "shell", "pm", "list", "packages", KindlePackage)
	if err != nil {
		return "", err
	}
	// pm prints lines of the form "package:com.amazon.kindlefc".
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if _, name, found := strings.Cut(strings.TrimSpace(line), ":"); found {
			return name, nil
		}
	}
	return "", nil
}

// Push copies a local file to a device path.
func (c *Client) Push(ctx context.Context, src, dst string) error {
	_, err := c.run(ctx, "push", src, dst)
	return err
}

// Pull copies a device path to a local destination.
func (c *Client) Pull(ctx context.Context, src, dst string) error {
	_, err := c.run(ctx, "pull", src, dst)
	return err
}

// Shell runs an unprivileged device shell command.
func (c *Client) Shell(ctx context.Context, args ...string) (string, error) {
	return c.run(ctx, append([]string{"shell"}, args...)...)
}

// Root restarts adbd with root privileges.
func (c *Client) Root(ctx context.Context) error {
	_, err := c.run(ctx, "root")
	return err
}

// RunElevated executes a privileged shell command through su.
func (c *Client) RunElevated(ctx context.Context, cmd ElevatedCommand) (string, error) {
	payload, err := cmd.Render()
	if err != nil {
		return "", err
	}
	return c.run(ctx, "shell", "su", "-c", payload)
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	c.logger.Debug("running adb command", logging.String("args", strings.Join(args, " ")))
	stdout, stderr, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return "", &CommandError{Args: args, Stderr: stderr, Err: err}
	}
	return stdout, nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
