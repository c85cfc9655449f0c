//go:build !tinygo

package hal

import (
	"io"
	"os"
	"path/filepath"
)

// hostStore keeps named blobs as plain files in the app's private data
// directory. The directory comes from LIFECOUNTER_DATA_DIR when set,
// otherwise the user config directory.
type hostStore struct {
	dir    string
	logger *hostLogger
}

func newHostStore(logger *hostLogger) *hostStore {
	dir := os.Getenv("LIFECOUNTER_DATA_DIR")
	if dir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(base, "lifecounter")
		} else {
			dir = "."
		}
	}
	return &hostStore{dir: dir, logger: logger}
}

func (s *hostStore) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

func (s *hostStore) Create(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}
