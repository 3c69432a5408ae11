package device

import (
	"context"
	"log/slog"
	"strings"

	"worddumb/internal/adb"
	"worddumb/internal/logging"
)

// KindleVendorName is the vendor string a mounted Kindle reports.
const KindleVendorName = "KINDLE"

// Kind identifies which transfer transport a probe selected.
type Kind int

const (
	KindNone Kind = iota
	KindMounted
	KindAndroid
)

// Target is the probe result. Exactly one variant is populated: a mounted
// Kindle carries a mount point, an Android Kindle app carries a package name.
type Target struct {
	Kind       Kind
	MountPoint string
	Package    string
}

// Connected reports whether the probe found any reachable target.
func (t Target) Connected() bool { return t.Kind != KindNone }

// Manager exposes the host device-manager state consulted during probing.
type Manager interface {
	IsPresent() bool
	VendorName() string
	MountPoint() string
}

// Prober determines whether a Kindle is reachable as a mounted volume or as an
// Android package over adb.
type Prober struct {
	adb    *adb.Client
	logger *slog.Logger
}

// NewProber constructs a prober. The adb client may be nil when the binary is
// not installed; the Android path is then skipped.
func NewProber(adbClient *adb.Client, logger *slog.Logger) *Prober {
	return &Prober{
		adb:    adbClient,
		logger: logging.NewComponentLogger(logger, "prober"),
	}
}

// Probe inspects the device-manager state and, for the Android-native format,
// the adb connection. A negative result is an expected steady state, not an
// error; probe failures are logged and swallowed. EPUB uploads to a Kindle are
// reported through epubDialog and treated as not-available, since the device
// would demand a format conversion instead.
func (p *Prober) Probe(ctx context.Context, mgr Manager, bookFormat string, epubDialog func()) Target {
	if mgr != nil && mgr.IsPresent() {
		isKindle := strings.EqualFold(mgr.VendorName(), KindleVendorName)
		if bookFormat == "EPUB" {
			if isKindle {
				if epubDialog != nil {
					epubDialog()
				}
			} else {
				return Target{Kind: KindMounted, MountPoint: mgr.MountPoint()}
			}
		} else if isKindle {
			return Target{Kind: KindMounted, MountPoint: mgr.MountPoint()}
		}
	}

	if bookFormat == "KFX" && p.adb != nil {
		connected, err := p.adb.Connected(ctx)
		if err != nil {
			p.logger.Debug("adb probe failed", logging.Error(err))
			return Target{}
		}
		if !connected {
			return Target{}
		}
		pkg, err := p.adb.PackageName(ctx)
		if err != nil {
			p.logger.Debug("package query failed", logging.Error(err))
			return Target{}
		}
		if pkg != "" {
			return Target{Kind: KindAndroid, Package: pkg}
		}
	}

	return Target{}
}
