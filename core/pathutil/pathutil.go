// core/pathutil/pathutil.go
package pathutil

import (
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Expand resolves user and environment variables in a filesystem path and
// collapses doubled slashes left behind by empty variables. Both the bare
// "~" and the "~name" forms are expanded; an unknown user name leaves the
// path untouched.
func Expand(path string) string {
	p := expandUser(os.ExpandEnv(path))
	return strings.ReplaceAll(p, "//", "/")
}

func expandUser(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	name, rest, _ := strings.Cut(p[1:], "/")
	var home string
	if name == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return p
		}
		home = u.HomeDir
	}
	return filepath.Join(home, rest)
}

// IsURL reports whether a path looks like a URL rather than a local file.
func IsURL(maybeURL string) bool {
	u, err := url.Parse(maybeURL)
	return err == nil && u.Scheme != ""
}

// SizeGB returns the total size, in gigabytes, of the files named by the
// given specs. Each spec may itself be a space-separated list of paths.
// A spec naming any absent file contributes zero.
func SizeGB(specs ...string) float64 {
	var total float64
	for _, spec := range specs {
		total += specSize(spec)
	}
	return total / (1 << 30)
}

func specSize(spec string) float64 {
	var bytes float64
	for _, p := range strings.Fields(spec) {
		info, err := os.Stat(p)
		if err != nil {
			return 0
		}
		bytes += float64(info.Size())
	}
	return bytes
}
