package helpers

import (
	"os"
	"time"
)

// -----------------------------------------------------------------------------
// File timestamp helpers. Creation and access times are not part of Go's
// portable os.FileInfo, so each OS extracts them from the raw stat data;
// see filetimes_{linux,darwin,windows}.go. When the platform data is not
// available the modification time stands in for both.
// -----------------------------------------------------------------------------

// FileTimes returns the creation and last-access timestamps of path.
func FileTimes(path string) (created, accessed time.Time, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	created, accessed, ok := statTimes(fi)
	if !ok {
		return fi.ModTime(), fi.ModTime(), nil
	}
	return created, accessed, nil
}
