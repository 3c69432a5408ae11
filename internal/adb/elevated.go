package adb

import (
	"errors"
	"fmt"
	"strings"
)

// ElevatedOp enumerates the privileged shell operations the transfer path
// composes through su.
type ElevatedOp int

const (
	OpCopy ElevatedOp = iota
	OpChown
	OpChcon
	OpList
)

// ElevatedCommand renders a privileged shell invocation. Keeping the string
// interpolation in one place makes the exact command text testable without a
// device attached.
type ElevatedCommand struct {
	Op    ElevatedOp
	Src   string
	Dst   string
	Owner string
	Label string
	Path  string
}

// CopyCommand copies a staged file into a protected directory.
func CopyCommand(src, dst string) ElevatedCommand {
	return ElevatedCommand{Op: OpCopy, Src: src, Dst: dst}
}

// ChownCommand assigns owner and group (same identity) to a path.
func ChownCommand(owner, path string) ElevatedCommand {
	return ElevatedCommand{Op: OpChown, Owner: owner, Path: path}
}

// ChconCommand applies a security label to a path.
func ChconCommand(label, path string) ElevatedCommand {
	return ElevatedCommand{Op: OpChcon, Label: label, Path: path}
}

// ListCommand lists a directory with ownership and security-label columns.
func ListCommand(path string) ElevatedCommand {
	return ElevatedCommand{Op: OpList, Path: path}
}

// Render produces the shell payload passed to su -c.
func (c ElevatedCommand) Render() (string, error) {
	switch c.Op {
	case OpCopy:
		if c.Src == "" || c.Dst == "" {
			return "", errors.New("copy requires source and destination")
		}
		return fmt.Sprintf("cp %s %s", shellQuote(c.Src), shellQuote(c.Dst)), nil
	case OpChown:
		if c.Owner == "" || c.Path == "" {
			return "", errors.New("chown requires owner and path")
		}
		return fmt.Sprintf("chown %s:%s %s", c.Owner, c.Owner, shellQuote(c.Path)), nil
	case OpChcon:
		if c.Label == "" || c.Path == "" {
			return "", errors.New("chcon requires label and path")
		}
		return fmt.Sprintf("chcon %s %s", c.Label, shellQuote(c.Path)), nil
	case OpList:
		if c.Path == "" {
			return "", errors.New("list requires path")
		}
		return fmt.Sprintf("ls -ldZ %s", shellQuote(c.Path)), nil
	default:
		return "", fmt.Errorf("unknown elevated op %d", c.Op)
	}
}

// DirOwnership holds the owner and security label of a device directory, as
// reported by a privileged ls -ldZ listing.
type DirOwnership struct {
	Owner string
	Label string
}

// ParseDirListing extracts owner and security label from ls -ldZ output of the
// form "drwxrwx--x 4 u0_a123 u0_a123 u:object_r:app_data_file:s0 ...".
func ParseDirListing(output string) (DirOwnership, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 5 {
		return DirOwnership{}, fmt.Errorf("unexpected directory listing %q", strings.TrimSpace(output))
	}
	return DirOwnership{Owner: fields[2], Label: fields[4]}, nil
}

func shellQuote(value string) string {
	if value == "" {
		return "''"
	}
	if !strings.ContainsAny(value, " \t'\"\\$`!*?[](){}<>|&;~#") {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
