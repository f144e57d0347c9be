//go:build !unix

package player

import "syscall"

func detachedAttr() *syscall.SysProcAttr {
	return nil
}
