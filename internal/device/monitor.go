package device

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"worddumb/internal/logging"
)

// amazonVendorID is the USB vendor ID shared by Kindle hardware (Lab126).
const amazonVendorID = "1949"

// Monitor listens for udev netlink events and invokes a callback when a Kindle
// is attached over USB.
type Monitor struct {
	logger  *slog.Logger
	handler func(ctx context.Context, devpath string)

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// NewMonitor creates a monitor that reports Kindle USB attach events.
func NewMonitor(logger *slog.Logger, handler func(ctx context.Context, devpath string)) *Monitor {
	return &Monitor{
		logger:  logging.NewComponentLogger(logger, "usb-monitor"),
		handler: handler,
	}
}

// Start begins listening for udev netlink events.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		m.logger.Warn("failed to connect to netlink socket; Kindle attach events unavailable",
			logging.Error(err),
		)
		return err
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, quit)

	m.logger.Info("usb monitor started")
	return nil
}

// Stop shuts down the monitor.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Info("usb monitor stopped")
}

// Running reports whether the monitor is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) monitorLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(ctx, uevent)
		case err := <-errs:
			m.logger.Warn("usb monitor error", logging.Error(err))
		}
	}
}

// buildMatcher matches USB add events carrying Amazon's vendor ID.
func buildMatcher() netlink.Matcher {
	action := "add"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM":    "usb",
			"ID_VENDOR_ID": amazonVendorID,
		},
	})
	return rules
}

func (m *Monitor) handleEvent(ctx context.Context, uevent netlink.UEvent) {
	devpath := uevent.KObj
	m.logger.Info("kindle attached",
		logging.String("devpath", devpath),
		logging.String("action", string(uevent.Action)),
	)
	if m.handler != nil {
		m.handler(ctx, devpath)
	}
}
