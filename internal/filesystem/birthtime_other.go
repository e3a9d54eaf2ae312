//go:build !linux && !darwin && !windows

package filesystem

import "time"

// BirthTime falls back to the modification time on platforms without a
// portable creation timestamp.
func BirthTime(path string) (time.Time, error) {
	return ModTime(path)
}
