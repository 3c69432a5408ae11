package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"worddumb/internal/adb"
	"worddumb/internal/services"
)

// pushToAndroid transfers the book and its companion files into the Kindle
// app's storage. The lookup database cannot be pushed directly into the app's
// private database directory, so it is staged on the shared sdcard and copied
// across with an elevated shell, then given the directory's owner and
// security label so the app can open it.
func (s *Sender) pushToAndroid(ctx context.Context) error {
	pkg := s.target.Package
	client := s.deps.ADB
	if client == nil {
		return services.Wrap(services.ErrConfiguration, "android", "push", "adb client not configured", nil)
	}

	filesDir := fmt.Sprintf("/sdcard/Android/data/%s/files", pkg)
	if err := client.Push(ctx, s.req.BookPath, filesDir+"/"+filepath.Base(s.req.BookPath)); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "push book", "", err)
	}

	if fileExists(s.req.XRayPath()) {
		dst := fmt.Sprintf("%s/%s/XRAY.%s.%s.db", filesDir, s.req.ASIN, s.req.ASIN, s.req.ACR)
		if err := client.Push(ctx, s.req.XRayPath(), dst); err != nil {
			return services.Wrap(services.ErrExternalTool, "android", "push x-ray db", "", err)
		}
		if err := os.Remove(s.req.XRayPath()); err != nil {
			return err
		}
	}

	if fileExists(s.req.LookupPath()) {
		if err := s.pushLookupDB(ctx, pkg); err != nil {
			return err
		}
		if err := s.deps.Dict.ToAndroid(ctx, s.req.Meta.Language, pkg); err != nil {
			return services.Wrap(services.ErrExternalTool, "android", "push dictionary", "", err)
		}
	}
	return nil
}

func (s *Sender) pushLookupDB(ctx context.Context, pkg string) error {
	client := s.deps.ADB
	name := fmt.Sprintf("WordWise.en.%s.%s.db", s.req.ASIN, s.req.SafeACR())
	staged := "/sdcard/" + name
	final := fmt.Sprintf("/data/data/%s/databases/%s", pkg, name)
	databasesDir := fmt.Sprintf("/data/data/%s/databases/", pkg)

	if err := client.Root(ctx); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "adb root", "", err)
	}
	if err := client.Push(ctx, s.req.LookupPath(), staged); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "stage lookup db", "", err)
	}
	if _, err := client.RunElevated(ctx, adb.CopyCommand(staged, final)); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "copy lookup db", "", err)
	}

	listing, err := client.RunElevated(ctx, adb.ListCommand(databasesDir))
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "inspect databases dir", "", err)
	}
	ownership, err := adb.ParseDirListing(listing)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "inspect databases dir", "", err)
	}
	if _, err := client.RunElevated(ctx, adb.ChownCommand(ownership.Owner, final)); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "chown lookup db", "", err)
	}
	if _, err := client.RunElevated(ctx, adb.ChconCommand(ownership.Label, final)); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "chcon lookup db", "", err)
	}

	if err := os.Remove(s.req.LookupPath()); err != nil {
		return err
	}
	if _, err := client.Shell(ctx, "rm", staged); err != nil {
		return services.Wrap(services.ErrExternalTool, "android", "remove staged lookup db", "", err)
	}
	return nil
}
