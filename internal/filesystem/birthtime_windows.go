package filesystem

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// BirthTime returns the creation time of path.
func BirthTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, classify(path, err)
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, fmt.Errorf("failed to get file attributes: %s", path)
	}
	return time.Unix(0, attrs.CreationTime.Nanoseconds()), nil
}
