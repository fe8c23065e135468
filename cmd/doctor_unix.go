//go:build unix

package cmd

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// reportDiskFree warns when the filesystem holding the preference store is
// nearly full, since SQLite writes start failing well before zero.
func reportDiskFree(dir string) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		printSkip("disk", "cannot stat filesystem")
		return
	}
	free := st.Bavail * uint64(st.Bsize)
	const warnBelow = 64 << 20
	msg := fmt.Sprintf("%d MiB free on %s", free>>20, dir)
	if free < warnBelow {
		printWarn("disk", msg)
	} else {
		printOK("disk", msg)
	}
}
