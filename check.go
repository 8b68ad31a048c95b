//go:build !arraynocheck

package array

// check guards documented preconditions. A failed check is a contract
// violation, not a recoverable error; it panics rather than returning.
// Builds tagged arraynocheck compile it away entirely.
func check(cond bool, msg string) {
	if !cond {
		panic("array: " + msg)
	}
}
