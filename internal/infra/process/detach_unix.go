//go:build !windows

package process

import "syscall"

// detachedAttr starts the child in a new session so it has no controlling
// terminal and does not receive signals aimed at our process group.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
