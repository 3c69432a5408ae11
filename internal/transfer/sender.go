package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"worddumb/internal/adb"
	"worddumb/internal/device"
	"worddumb/internal/dict"
	"worddumb/internal/language"
	"worddumb/internal/logging"
	"worddumb/internal/notifications"
	"worddumb/internal/sidecar"
	"worddumb/internal/uploads"
)

// forcedLanguageSuffix marks a local duplicate whose metadata language was
// forced to English for device-side lookup indexing.
const forcedLanguageSuffix = "_en"

// Deps bundles the collaborators a Sender needs.
type Deps struct {
	Host     Host
	ADB      *adb.Client
	Dict     *dict.Provisioner
	Store    *uploads.Store
	Notifier notifications.Service
	Logger   *slog.Logger
}

// Sender moves one book's companion files to the probed device target. It is
// re-entered through the host's upload continuation when a first-time upload
// finishes; there is no concurrent access.
type Sender struct {
	deps    Deps
	req     Request
	target  device.Target
	notif   string
	logger  *slog.Logger
	pending *uploads.Job
}

// NewSender constructs a sender for one request and probe result. notif is
// the status message shown in the host UI once the transfer completes.
func NewSender(req Request, target device.Target, notif string, deps Deps) *Sender {
	return &Sender{
		deps:   deps,
		req:    req,
		target: target,
		notif:  notif,
		logger: logging.NewComponentLogger(deps.Logger, "sender"),
	}
}

// Send runs the transfer. job is nil on the first entry and carries the
// host's upload job when re-entered through the continuation.
func (s *Sender) Send(ctx context.Context, job *Job) error {
	if s.target.Kind == device.KindAndroid {
		if err := s.pushToAndroid(ctx); err != nil {
			s.notifyError(ctx, err)
			return err
		}
		s.deps.Host.ShowStatus(s.notif)
		s.notifyCompleted(ctx, "Kindle app")
		return nil
	}

	if job != nil {
		if job.Failed {
			s.deps.Host.JobFailed(job)
			s.settleJob(ctx, job, false)
			return nil
		}
		s.deps.Host.BooksUploaded(job)
		s.settleJob(ctx, job, true)
		if s.req.Format == FormatEPUB {
			// EPUB never gets companion files; uploading the book was the
			// whole transfer.
			s.deps.Host.ShowStatus(s.notif)
			return os.Remove(s.req.BookPath)
		}
	}

	setEnglish := fileExists(s.req.LookupPath()) &&
		s.req.Format != FormatEPUB &&
		!language.IsEnglish(s.req.Meta.Language)

	hasBook, paths, err := s.deps.Host.BookOnDevice(s.req.BookID)
	if err != nil {
		return fmt.Errorf("query device index: %w", err)
	}

	if hasBook && s.req.Format != FormatEPUB && len(paths) > 0 {
		deviceBookPath := filepath.Join(s.target.MountPoint, paths[len(paths)-1])
		if job == nil {
			// Book was already on the device: bring its ASIN in line and
			// refresh the cover when it was stale.
			updateASIN, err := s.deps.Host.RecomputeIdentification(deviceBookPath, s.req.Format, &s.req.Meta, s.req.ASIN, setEnglish)
			if err != nil {
				return fmt.Errorf("recompute identification: %w", err)
			}
			if updateASIN {
				s.deps.Host.UpdateThumbnail(s.req.Meta)
				s.deps.Host.UploadThumbnail(s.req.Meta, s.req.BookPath)
			}
		}
		if err := s.moveFilesToKindle(deviceBookPath); err != nil {
			s.notifyError(ctx, err)
			return err
		}
		s.removeForcedLanguageDuplicate()
		s.deps.Host.ShowStatus(s.notif)
		s.notifyCompleted(ctx, "Kindle")
		return nil
	}

	if job == nil || s.req.Format == FormatEPUB {
		// First-time upload: hand the book to the host's upload subsystem
		// and re-enter when its job completes.
		s.deps.Host.UpdateThumbnail(s.req.Meta)
		if setEnglish && s.req.Format == FormatKFX {
			// Without this the device would index the book under its original
			// language and never consult the English lookup database.
			s.req.Meta.Language = "eng"
		}
		hostJob, err := s.deps.Host.UploadBooks(ctx, s.req, func(j *Job) {
			if err := s.Send(ctx, j); err != nil {
				s.logger.Error("transfer continuation failed", logging.Error(err))
			}
		})
		if err != nil {
			return fmt.Errorf("enqueue upload: %w", err)
		}
		s.trackJob(ctx, hostJob)
	}
	return nil
}

// moveFilesToKindle places the present companion files into the book's
// sidecar directory, provisioning the dictionary before the lookup database
// lands.
func (s *Sender) moveFilesToKindle(deviceBookPath string) error {
	if fileExists(s.req.LookupPath()) {
		if err := s.deps.Dict.ToKindle(s.req.Meta.Language, dict.KindleKlldPath(s.target.MountPoint)); err != nil {
			return err
		}
		if err := sidecar.MoveCompanion(s.req.LookupPath(), deviceBookPath); err != nil {
			return err
		}
	}
	return sidecar.MoveCompanion(s.req.XRayPath(), deviceBookPath)
}

func (s *Sender) removeForcedLanguageDuplicate() {
	base := filepath.Base(s.req.BookPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.HasSuffix(stem, forcedLanguageSuffix) {
		if err := os.Remove(s.req.BookPath); err != nil {
			s.logger.Warn("remove forced-language duplicate", logging.Error(err))
		}
	}
}

func (s *Sender) trackJob(ctx context.Context, hostJob *Job) {
	if s.deps.Store == nil {
		return
	}
	rec, err := s.deps.Store.Record(ctx, s.req.BookID, s.req.ASIN, s.req.BookPath, s.req.Meta.Title)
	if err != nil {
		s.logger.Warn("record pending upload", logging.Error(err))
		return
	}
	s.pending = rec
	if hostJob != nil && hostJob.ID == "" {
		hostJob.ID = rec.ID
	}
	s.logger.Info("upload job pending",
		logging.String("job_id", rec.ID),
		logging.Int64("book_id", s.req.BookID),
	)
}

func (s *Sender) settleJob(ctx context.Context, job *Job, completed bool) {
	if s.deps.Store == nil || s.pending == nil {
		return
	}
	var err error
	if completed {
		err = s.deps.Store.Complete(ctx, s.pending.ID)
	} else {
		err = s.deps.Store.Fail(ctx, s.pending.ID, job.Detail)
	}
	if err != nil {
		s.logger.Warn("settle pending upload", logging.Error(err))
	}
	s.pending = nil
}

func (s *Sender) notifyCompleted(ctx context.Context, target string) {
	if s.deps.Notifier == nil {
		return
	}
	if err := s.deps.Notifier.NotifySendCompleted(ctx, s.req.Meta.Title, target); err != nil {
		s.logger.Warn("send notification failed", logging.Error(err))
	}
}

func (s *Sender) notifyError(ctx context.Context, cause error) {
	if s.deps.Notifier == nil {
		return
	}
	if err := s.deps.Notifier.NotifyError(ctx, cause, "device transfer"); err != nil {
		s.logger.Warn("error notification failed", logging.Error(err))
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
