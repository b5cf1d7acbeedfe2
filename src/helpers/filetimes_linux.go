//go:build linux

package helpers

import (
	"os"
	"syscall"
	"time"
)

// -----------------------------------------------------------------------------

// statTimes extracts creation and access times from the Linux stat data.
// Linux does not expose a birth time through syscall.Stat_t, so the status
// change time (ctime) is the closest available creation proxy.
func statTimes(fi os.FileInfo) (created, accessed time.Time, ok bool) {
	st, isStat := fi.Sys().(*syscall.Stat_t)
	if !isStat {
		return time.Time{}, time.Time{}, false
	}

	created = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	accessed = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	return created, accessed, true
}
