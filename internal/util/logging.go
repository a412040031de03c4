// Package util provides common utilities including logging helpers,
// calendar-day arithmetic, checksums and file system locations.
package util

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// SetupLogFile redirects the standard logger to path. The returned closer
// restores stderr output and closes the file.
func SetupLogFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return logFile{f}, nil
}

type logFile struct{ f *os.File }

func (l logFile) Close() error {
	log.SetOutput(os.Stderr)
	return l.f.Close()
}
