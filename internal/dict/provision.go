package dict

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"worddumb/internal/adb"
	"worddumb/internal/config"
	"worddumb/internal/fileutil"
	"worddumb/internal/language"
	"worddumb/internal/logging"
)

// KindleKlldPath is the Word Wise dictionary location relative to a Kindle
// mount root.
func KindleKlldPath(mountPoint string) string {
	return filepath.Join(mountPoint, "system", "kll", "kll.en.zh.klld")
}

// AndroidKlldPath is the Word Wise dictionary location inside the Kindle
// Android app's private storage.
func AndroidKlldPath(packageName string) string {
	return fmt.Sprintf("/data/data/%s/databases/wordwise/WordWise.kll.en.zh.db", packageName)
}

// Provisioner keeps the on-device Word Wise dictionary for a book's language
// present and up to date.
type Provisioner struct {
	cfg    *config.Config
	adb    *adb.Client
	logger *slog.Logger
}

// NewProvisioner constructs a provisioner. The adb client may be nil when only
// mounted transfers are in play.
func NewProvisioner(cfg *config.Config, adbClient *adb.Client, logger *slog.Logger) *Provisioner {
	return &Provisioner{
		cfg:    cfg,
		adb:    adbClient,
		logger: logging.NewComponentLogger(logger, "dict"),
	}
}

// resolve maps a book language to the local dictionary file. The empty path
// means nothing should be provisioned: the language is not in the table, the
// user prefers the device's built-in dictionary, or no dictionary file has
// been installed for it.
func (p *Provisioner) resolve(bookLang string) string {
	lang, ok := language.FromBookLanguage(bookLang)
	if !ok {
		p.logger.Debug("language not in dictionary table", logging.String("book_lang", bookLang))
		return ""
	}
	if p.cfg.UseDeviceDictionary(lang.Code) {
		p.logger.Debug("device dictionary preferred", logging.String("lemma_lang", lang.Code))
		return ""
	}
	localPath := p.cfg.DictionaryPath(lang.Code, p.cfg.Dictionary.GlossLang)
	if _, err := os.Stat(localPath); err != nil {
		p.logger.Debug("no local dictionary file", logging.String("path", localPath))
		return ""
	}
	return localPath
}

// ToKindle copies the dictionary for the book's language to the mounted
// device path. The copy is skipped when the destination already holds the same
// bytes, so repeated sends of many books share one dictionary write.
func (p *Provisioner) ToKindle(bookLang, deviceKlldPath string) error {
	localPath := p.resolve(bookLang)
	if localPath == "" {
		return nil
	}

	copyNeeded := true
	if _, err := os.Stat(deviceKlldPath); err == nil {
		same, err := fileutil.SameContent(localPath, deviceKlldPath)
		if err != nil {
			return fmt.Errorf("compare dictionary files: %w", err)
		}
		copyNeeded = !same
	}
	if !copyNeeded {
		p.logger.Debug("device dictionary up to date", logging.String("path", deviceKlldPath))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(deviceKlldPath), 0o755); err != nil {
		return fmt.Errorf("create dictionary directory: %w", err)
	}
	if err := fileutil.CopyFile(localPath, deviceKlldPath); err != nil {
		return fmt.Errorf("copy dictionary to device: %w", err)
	}
	p.logger.Info("dictionary copied to device", logging.String("path", deviceKlldPath))
	return nil
}

// ToAndroid pushes the dictionary for the book's language into the Kindle
// app's private storage. The push overwrites unconditionally: content identity
// cannot be checked across the adb boundary.
func (p *Provisioner) ToAndroid(ctx context.Context, bookLang, packageName string) error {
	localPath := p.resolve(bookLang)
	if localPath == "" {
		return nil
	}
	if p.adb == nil {
		return nil
	}
	if err := p.adb.Push(ctx, localPath, AndroidKlldPath(packageName)); err != nil {
		return err
	}
	p.logger.Info("dictionary pushed to app", logging.String("package", packageName))
	return nil
}
