// Package static resolves request paths under a mount prefix to files on disk.
package static

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgtm-migrator/mecj-demo/internal/common/fsutil"
)

// contentTypes is the fixed extension map; anything else is served without a Content-Type.
var contentTypes = map[string]string{
	"png":  "image/png",
	"js":   "application/javascript",
	"html": "text/html",
	"css":  "text/css",
}

// ContentType returns the content type for name's extension (case-insensitive),
// or "" when the extension is not in the fixed map.
func ContentType(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return contentTypes[strings.ToLower(ext)]
}

// Asset is a resolved static file.
type Asset struct {
	Path        string
	ContentType string
	Body        []byte
}

// NotFoundError reports a request path that does not name a servable file.
// Path is the request path with the mount prefix removed.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string { return "not found: " + e.Path }

func (e *NotFoundError) Unwrap() error { return e.Err }

// StatusCode maps the error to 404 Not Found.
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// Resolver serves files below Root.
type Resolver struct {
	root string
}

// New returns a Resolver rooted at the absolute form of root. The directory
// need not exist yet; missing files simply resolve to NotFound.
func New(root string) (*Resolver, error) {
	abs, err := fsutil.AbsDir(root)
	if err != nil {
		return nil, fmt.Errorf("static root: %w", err)
	}
	return &Resolver{root: abs}, nil
}

// Root returns the absolute root directory.
func (r *Resolver) Root() string { return r.root }

// Resolve strips prefix from requestPath, confines the remainder to the root
// and reads the file it names.
func (r *Resolver) Resolve(prefix, requestPath string) (Asset, error) {
	rel := strings.TrimPrefix(requestPath, prefix)
	p, err := fsutil.SecureJoin(r.root, rel)
	if err != nil {
		return Asset{}, &NotFoundError{Path: rel, Err: err}
	}
	if !fsutil.IsRegularFile(p) {
		return Asset{}, &NotFoundError{Path: rel, Err: os.ErrNotExist}
	}
	body, err := os.ReadFile(p)
	if err != nil {
		return Asset{}, &NotFoundError{Path: rel, Err: err}
	}
	return Asset{Path: p, ContentType: ContentType(p), Body: body}, nil
}
