//go:build !windows

package nav

// Drives returns the filesystem root.
func Drives() []string {
	return []string{"/"}
}
