package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"worddumb/internal/device"
	"worddumb/internal/dict"
	"worddumb/internal/fileutil"
	"worddumb/internal/notifications"
	"worddumb/internal/transfer"
	"worddumb/internal/uploads"
)

func newSendCommand(ctx *commandContext) *cobra.Command {
	var (
		bookPath   string
		asin       string
		acr        string
		formatFlag string
		language   string
		title      string
		mountPoint string
		bookID     int64
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a book's Word Wise and X-Ray files to a connected Kindle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, err := os.Stat(bookPath); err != nil {
				return fmt.Errorf("book file: %w", err)
			}

			format, err := resolveFormat(formatFlag, bookPath)
			if err != nil {
				return err
			}
			if title == "" {
				base := filepath.Base(bookPath)
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}

			logger := ctx.logger()
			adbClient := ctx.adbClient(logger)
			out := cmd.OutOrStdout()

			var mgr device.Manager
			if mountPoint != "" {
				mgr = &cliManager{mount: mountPoint}
			}
			prober := device.NewProber(adbClient, logger)
			target := prober.Probe(cmd.Context(), mgr, string(format), func() {
				fmt.Fprintln(out, "Kindle devices do not accept EPUB directly; convert the book to AZW3 or KFX first.")
			})
			if !target.Connected() {
				return fmt.Errorf("no Kindle reachable (mount point or adb connection required)")
			}

			store, err := uploads.Open(cfg)
			if err != nil {
				return fmt.Errorf("open uploads store: %w", err)
			}
			defer store.Close()

			host := &cliHost{mount: target.MountPoint, bookPath: bookPath, out: out}
			req := transfer.NewRequest(bookID, asin, bookPath, transfer.Metadata{Title: title, Language: language}, format, acr)
			deps := transfer.Deps{
				Host:     host,
				ADB:      adbClient,
				Dict:     dict.NewProvisioner(cfg, adbClient, logger),
				Store:    store,
				Notifier: notifications.NewService(cfg),
				Logger:   logger,
			}
			sender := transfer.NewSender(req, target, fmt.Sprintf("Sent %s to device", title), deps)
			if err := sender.Send(cmd.Context(), nil); err != nil {
				return err
			}
			return host.finishUpload(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&bookPath, "book", "", "Path to the book file")
	cmd.Flags().StringVar(&asin, "asin", "", "ASIN the companion files were generated for")
	cmd.Flags().StringVar(&acr, "acr", "", "Amazon content reference of the book, if known")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Book format (EPUB, KFX, AZW3, AZW, MOBI); inferred from the file extension when omitted")
	cmd.Flags().StringVar(&language, "language", "", "Book language code")
	cmd.Flags().StringVar(&title, "title", "", "Book title for status and notifications")
	cmd.Flags().StringVar(&mountPoint, "mount", "", "Mount point of a connected Kindle volume")
	cmd.Flags().Int64Var(&bookID, "book-id", 0, "Host library identifier for upload bookkeeping")
	_ = cmd.MarkFlagRequired("book")
	_ = cmd.MarkFlagRequired("asin")

	return cmd
}

func resolveFormat(flag, bookPath string) (transfer.Format, error) {
	value := strings.ToUpper(strings.TrimSpace(flag))
	if value == "" {
		value = strings.ToUpper(strings.TrimPrefix(filepath.Ext(bookPath), "."))
	}
	switch transfer.Format(value) {
	case transfer.FormatEPUB, transfer.FormatKFX, transfer.FormatAZW3, transfer.FormatAZW, transfer.FormatMOBI:
		return transfer.Format(value), nil
	}
	return "", fmt.Errorf("unsupported book format %q", value)
}

// cliManager presents a mount point supplied on the command line as the host
// device-manager state.
type cliManager struct {
	mount string
}

func (m *cliManager) IsPresent() bool {
	info, err := os.Stat(m.mount)
	return err == nil && info.IsDir()
}

func (m *cliManager) VendorName() string { return device.KindleVendorName }
func (m *cliManager) MountPoint() string { return m.mount }

// cliHost adapts the transfer host surface to a plain command-line run: the
// device index is the mounted documents directory, and uploads are direct
// copies into it.
type cliHost struct {
	mount    string
	bookPath string
	out      io.Writer

	pendingDone func(*transfer.Job)
}

func (h *cliHost) BookOnDevice(bookID int64) (bool, []string, error) {
	if h.mount == "" {
		return false, nil, nil
	}
	stem := bookStem(h.bookPath)
	entries, err := os.ReadDir(filepath.Join(h.mount, "documents"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil, nil
		}
		return false, nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if bookStem(entry.Name()) == stem {
			paths = append(paths, filepath.Join("documents", entry.Name()))
		}
	}
	return len(paths) > 0, paths, nil
}

// UploadBooks defers the copy until finishUpload so the caller's bookkeeping
// is recorded before the continuation runs.
func (h *cliHost) UploadBooks(ctx context.Context, req transfer.Request, done func(*transfer.Job)) (*transfer.Job, error) {
	h.pendingDone = done
	return &transfer.Job{}, nil
}

// finishUpload performs a deferred book copy and re-enters the transfer
// through the stored continuation.
func (h *cliHost) finishUpload(ctx context.Context) error {
	if h.pendingDone == nil {
		return nil
	}
	done := h.pendingDone
	h.pendingDone = nil

	job := &transfer.Job{}
	dst := filepath.Join(h.mount, "documents", filepath.Base(h.bookPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		job.Failed = true
		job.Detail = err.Error()
	} else if err := fileutil.CopyFile(h.bookPath, dst); err != nil {
		job.Failed = true
		job.Detail = err.Error()
	}
	done(job)
	if job.Failed {
		return fmt.Errorf("copy book to device: %s", job.Detail)
	}
	return nil
}

func (h *cliHost) JobFailed(job *transfer.Job) {
	fmt.Fprintf(h.out, "Upload failed: %s\n", job.Detail)
}

func (h *cliHost) BooksUploaded(job *transfer.Job) {}

func (h *cliHost) ShowStatus(message string) {
	fmt.Fprintln(h.out, message)
}

func (h *cliHost) UpdateThumbnail(meta transfer.Metadata) {}

func (h *cliHost) UploadThumbnail(meta transfer.Metadata, bookPath string) {}

// RecomputeIdentification is a no-op for command-line sends: rewriting the
// on-device book metadata needs the host e-book manager's format tooling.
func (h *cliHost) RecomputeIdentification(deviceBookPath string, format transfer.Format, meta *transfer.Metadata, asin string, setEnglish bool) (bool, error) {
	return false, nil
}

func bookStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
