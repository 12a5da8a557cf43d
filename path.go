package zrx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zensical/zrx/errs"
)

// validate ensures the given value contains no backslash.
//
// Paths are normalized to forward slashes before they enter the system,
// which is the default on Unix and supported on Windows, so identifiers
// stay portable and usable as URLs. Callers should normalize with a helper
// like filepath.ToSlash before constructing values.
func validate(value string) error {
	if strings.IndexByte(value, '\\') >= 0 {
		return fmt.Errorf("%w: %q", errs.ErrBackslash, value)
	}

	return nil
}

// FilePath projects an identifier onto a relative filesystem path.
//
// The context and path components are joined and analyzed segment by
// segment. "." segments and empty segments are dropped. ".." segments are
// rejected with errs.ErrParentDir, as they would allow escaping the
// context. Absolute and drive-rooted paths are rejected with
// errs.ErrRootDir, as resolved paths must stay portable.
//
// The result uses the platform separator and is intended to be joined onto
// a sandbox root by the caller.
func FilePath(id *ID) (string, error) {
	context := id.Context()
	path := id.Path()

	// Joining an absolute path replaces the context entirely, so a rooted
	// path component is just as much a sandbox escape as a rooted context.
	// Both components are checked before joining.
	for _, value := range []string{context, path} {
		if strings.HasPrefix(value, "/") || isDriveRooted(value) {
			return "", fmt.Errorf("%w: %q", errs.ErrRootDir, value)
		}
	}

	joined := context + "/" + path

	var stack []string
	for _, segment := range strings.Split(joined, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			return "", fmt.Errorf("%w: %q", errs.ErrParentDir, joined)
		}

		stack = append(stack, segment)
	}

	return filepath.Join(stack...), nil
}

// isDriveRooted reports whether a component starts with a drive-letter
// segment like "C:", which would resolve absolutely on Windows.
func isDriveRooted(value string) bool {
	first, _, _ := strings.Cut(value, "/")

	return len(first) == 2 && first[1] == ':' && isASCIILetter(first[0])
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
