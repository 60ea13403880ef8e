// Package circular holds the wrap-around index arithmetic shared by project
// browsing and the image gallery.
package circular

// Index maps any integer onto [0, n). It returns -1 when n <= 0, since an empty
// ring has no valid position.
func Index(i, n int) int {
	if n <= 0 {
		return -1
	}
	return ((i % n) + n) % n
}

// Next returns the position after i in a ring of length n.
func Next(i, n int) int {
	return Index(i+1, n)
}

// Prev returns the position before i in a ring of length n.
func Prev(i, n int) int {
	return Index(i-1, n)
}
