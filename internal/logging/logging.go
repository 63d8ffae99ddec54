package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the global logger at path. The TUI owns stdout, so when the
// file cannot be opened logs are discarded and the error is returned.
func Setup(level, path string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}
	log.SetOutput(f)
	return f, nil
}

// Discard silences the global logger
func Discard() {
	log.SetOutput(io.Discard)
}
