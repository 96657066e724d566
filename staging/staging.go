// Package staging resolves remote file references to locally accessible
// paths before a tool runs, and publishes a populated local directory back
// to a destination prefix afterwards. Plain paths, file:// URLs and http(s)
// URLs are supported; anything fancier is the hosting platform's business.
package staging

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileRef is a reference to a single input file.
type FileRef struct {
	// Remote is the user-facing location: a path, or a file:// or
	// http(s):// URL.
	Remote string

	// LocalPath is filled in by Resolve.
	LocalPath string
}

// NewFileRef returns a FileRef for the given location.
func NewFileRef(remote string) *FileRef {
	return &FileRef{Remote: remote}
}

// Resolve makes the referenced file locally accessible under workDir and
// records the local path. Local paths and file:// URLs resolve in place
// without copying; http(s) URLs are downloaded once into workDir.
func (f *FileRef) Resolve(workDir string) (string, error) {
	u, err := url.Parse(f.Remote)
	if err != nil || u.Scheme == "" {
		f.LocalPath = f.Remote
		return f.LocalPath, nil
	}

	switch u.Scheme {
	case "file":
		f.LocalPath = u.Path
		return f.LocalPath, nil
	case "http", "https":
		local, err := download(f.Remote, workDir)
		if err != nil {
			return "", err
		}
		f.LocalPath = local
		return local, nil
	default:
		return "", fmt.Errorf("unsupported scheme %q in %s", u.Scheme, f.Remote)
	}
}

func download(rawURL, workDir string) (string, error) {
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	resp, err := http.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", rawURL, resp.Status)
	}

	u, _ := url.Parse(rawURL)
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = "staged_input"
	}
	local := filepath.Join(workDir, name)

	out, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", local, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", local, err)
	}
	return local, nil
}

// DirRef is a reference to a destination directory for results.
type DirRef struct {
	// Remote is the destination prefix: a path or a file:// URL.
	Remote string
}

// NewDirRef returns a DirRef anchored at the given destination.
func NewDirRef(remote string) *DirRef {
	return &DirRef{Remote: remote}
}

// localDest maps the destination to a local directory path.
func (d *DirRef) localDest() (string, error) {
	u, err := url.Parse(d.Remote)
	if err != nil || u.Scheme == "" {
		return d.Remote, nil
	}
	if u.Scheme == "file" {
		return u.Path, nil
	}
	return "", fmt.Errorf("unsupported destination scheme %q in %s", u.Scheme, d.Remote)
}

// Publish copies every file under localDir to the destination prefix,
// preserving the relative layout, and returns the destination path the
// results now live under. Copying the same file set again overwrites in
// place, so repeated publishes of identical runs converge on the same tree.
func (d *DirRef) Publish(localDir string) (string, error) {
	dest, err := d.localDest()
	if err != nil {
		return "", err
	}

	err = filepath.Walk(localDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(localDir, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(p, target)
	})
	if err != nil {
		return "", fmt.Errorf("publish %s to %s: %w", localDir, dest, err)
	}
	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// IsURL reports whether s looks like a URL rather than a filesystem path.
func IsURL(s string) bool {
	return strings.Contains(s, "://")
}
