package serial

import (
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the counter as a plain-text integer in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored counter. A missing file or unparsable content yields
// zero without an error.
func (f *FileStore) Load() (int64, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0, nil
	}

	return v, nil
}

// Save writes the counter value as decimal text.
func (f *FileStore) Save(value int64) error {
	return os.WriteFile(f.path, []byte(strconv.FormatInt(value, 10)), 0o644)
}
