//go:build !unix

package cmd

import "os/exec"

func spawnDetached(argv []string) error {
	c := exec.Command(argv[0], argv[1:]...)
	if err := c.Start(); err != nil {
		return err
	}
	return c.Process.Release()
}
