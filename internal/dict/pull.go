package dict

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"worddumb/internal/fileutil"
)

// PullFromAndroid copies the Kindle app's dictionary directory back to local
// storage for reuse, flattening the pulled wordwise directory into destDir.
func (p *Provisioner) PullFromAndroid(ctx context.Context, packageName, destDir string) error {
	if p.adb == nil {
		return fmt.Errorf("adb client required to pull from %s", packageName)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	if err := p.adb.Root(ctx); err != nil {
		return err
	}
	src := fmt.Sprintf("/data/data/%s/databases/wordwise", packageName)
	if err := p.adb.Pull(ctx, src, destDir); err != nil {
		return err
	}

	pulled := filepath.Join(destDir, "wordwise")
	entries, err := os.ReadDir(pulled)
	if err != nil {
		return fmt.Errorf("read pulled dictionary directory: %w", err)
	}
	for _, entry := range entries {
		if err := fileutil.MoveFile(filepath.Join(pulled, entry.Name()), filepath.Join(destDir, entry.Name())); err != nil {
			return err
		}
	}
	return os.Remove(pulled)
}

// PullFromKindle copies every English dictionary file from a mounted Kindle's
// system/kll directory into destDir.
func (p *Provisioner) PullFromKindle(mountPoint, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(mountPoint, "system", "kll", "*.en.klld"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		if err := fileutil.CopyFile(match, filepath.Join(destDir, filepath.Base(match))); err != nil {
			return fmt.Errorf("copy %q: %w", filepath.Base(match), err)
		}
	}
	return nil
}
