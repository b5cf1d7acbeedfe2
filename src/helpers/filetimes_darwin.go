//go:build darwin

package helpers

import (
	"os"
	"syscall"
	"time"
)

// -----------------------------------------------------------------------------

// statTimes extracts creation and access times from the Darwin stat data,
// which carries a real birth timestamp.
func statTimes(fi os.FileInfo) (created, accessed time.Time, ok bool) {
	st, isStat := fi.Sys().(*syscall.Stat_t)
	if !isStat {
		return time.Time{}, time.Time{}, false
	}

	created = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	accessed = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	return created, accessed, true
}
