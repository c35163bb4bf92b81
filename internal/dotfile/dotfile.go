// Package dotfile names and locates GStreamer pipeline graph dumps.
package dotfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EnvDir is read by GStreamer every time a graph is dumped. Dumps are
// silently skipped while it is unset.
const EnvDir = "GST_DEBUG_DUMP_DOT_DIR"

const DefaultDir = "/tmp"

// Setup exports dir as the dump directory unless the environment already
// names one, and returns the directory in effect.
func Setup(dir string) (string, error) {
	if cur := os.Getenv(EnvDir); cur != "" {
		return cur, nil
	}
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.Setenv(EnvDir, dir); err != nil {
		return "", fmt.Errorf("set %s: %w", EnvDir, err)
	}
	return dir, nil
}

func Name(pipeline string, now time.Time) string {
	return fmt.Sprintf("%s_pipeline_%s", pipeline, now.Format("20060102_150405"))
}

func Path(dir, name string) string {
	return filepath.Join(dir, name+".dot")
}
