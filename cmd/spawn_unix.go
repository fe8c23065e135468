//go:build unix

package cmd

import (
	"os/exec"
	"syscall"
)

// spawnDetached starts argv in its own session so it survives lume exiting.
func spawnDetached(argv []string) error {
	c := exec.Command(argv[0], argv[1:]...)
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := c.Start(); err != nil {
		return err
	}
	return c.Process.Release()
}
