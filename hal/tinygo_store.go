//go:build tinygo && baremetal

package hal

import (
	"io"
	"os"

	"machine"

	"tinygo.org/x/tinyfs/littlefs"
)

// flashStore keeps named blobs on a LittleFS filesystem in the MCU's
// on-board flash. A failed mount is formatted once; a store that still
// cannot mount serves errors and the app falls back to defaults.
type flashStore struct {
	fs *littlefs.LFS
}

func newFlashStore(logger Logger) *flashStore {
	fs := littlefs.New(machine.Flash)
	fs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 512,
		BlockCycles:   100,
	})

	if err := fs.Mount(); err != nil {
		logger.WriteLineString("store: mount failed, formatting")
		if err := fs.Format(); err != nil {
			logger.WriteLineString("store: format failed: " + err.Error())
			return &flashStore{}
		}
		if err := fs.Mount(); err != nil {
			logger.WriteLineString("store: mount after format failed: " + err.Error())
			return &flashStore{}
		}
	}
	return &flashStore{fs: fs}
}

func (s *flashStore) Open(name string) (io.ReadCloser, error) {
	if s.fs == nil {
		return nil, ErrNotImplemented
	}
	return s.fs.OpenFile(name, os.O_RDONLY)
}

func (s *flashStore) Create(name string) (io.WriteCloser, error) {
	if s.fs == nil {
		return nil, ErrNotImplemented
	}
	return s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}
