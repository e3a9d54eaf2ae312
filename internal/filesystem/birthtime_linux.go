package filesystem

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime returns the creation time of path. Filesystems that do not record
// a birth time report the inode change time instead.
func BirthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME|unix.STATX_CTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		var st unix.Stat_t
		if err := unix.Stat(path, &st); err != nil {
			return time.Time{}, classify(path, err)
		}
		return time.Unix(st.Ctim.Unix()), nil
	}
	if err != nil {
		return time.Time{}, classify(path, err)
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
	}
	return time.Unix(stx.Ctime.Sec, int64(stx.Ctime.Nsec)), nil
}
