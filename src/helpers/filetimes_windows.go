//go:build windows

package helpers

import (
	"os"
	"syscall"
	"time"
)

// -----------------------------------------------------------------------------

// statTimes extracts creation and access times from the Win32 file data.
func statTimes(fi os.FileInfo) (created, accessed time.Time, ok bool) {
	st, isAttr := fi.Sys().(*syscall.Win32FileAttributeData)
	if !isAttr {
		return time.Time{}, time.Time{}, false
	}

	created = time.Unix(0, st.CreationTime.Nanoseconds())
	accessed = time.Unix(0, st.LastAccessTime.Nanoseconds())
	return created, accessed, true
}
