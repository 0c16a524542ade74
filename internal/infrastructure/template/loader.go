package template

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

//go:embed templates/*.pongo2
var builtin embed.FS

// overlayLoader serves templates from an optional directory on disk and falls
// back to the built-in copies compiled into the binary.
type overlayLoader struct {
	dir    string
	logger logger.Interface
}

func newOverlayLoader(dir string, log logger.Interface) *overlayLoader {
	if dir != "" {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			log.Warnw("templates directory not found, using built-in templates", "path", dir)
			dir = ""
		}
	}
	return &overlayLoader{dir: dir, logger: log}
}

// Abs resolves name relative to the including template. Names are always
// slash-separated and rooted at the templates directory.
func (l *overlayLoader) Abs(base, name string) string {
	if path.IsAbs(name) || base == "" {
		return path.Clean(strings.TrimPrefix(name, "/"))
	}
	return path.Join(path.Dir(base), name)
}

func (l *overlayLoader) Get(name string) (io.Reader, error) {
	name = path.Clean(name)
	if strings.HasPrefix(name, "..") {
		return nil, fmt.Errorf("template %q escapes the templates directory", name)
	}

	if l.dir != "" {
		data, err := os.ReadFile(filepath.Join(l.dir, filepath.FromSlash(name)))
		if err == nil {
			return bytes.NewReader(data), nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read template %q: %w", name, err)
		}
	}

	data, err := builtin.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", name, err)
	}
	return bytes.NewReader(data), nil
}
