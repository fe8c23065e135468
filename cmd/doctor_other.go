//go:build !unix

package cmd

func reportDiskFree(string) {
	printSkip("disk", "free-space check not supported on this platform")
}
