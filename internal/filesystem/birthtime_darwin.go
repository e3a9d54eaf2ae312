package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime returns the creation time of path.
func BirthTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, classify(path, err)
	}
	return time.Unix(st.Btim.Unix()), nil
}
