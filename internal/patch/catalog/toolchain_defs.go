package catalog

import (
	"strings"

	"gomedic/internal/patch"
)

// ESXi's vmx monitor does not implement epoll_pwait for amd64 guests, so the
// runtime needs the classic epoll_wait syscall number available as a fallback.
// The constant goes immediately after SYS_EPOLL_CTL to keep the block sorted
// the way upstream keeps it.

const (
	defsMarker = "SYS_EPOLL_WAIT"
	defsAnchor = "\tSYS_EPOLL_CTL     = 233\n"
	defsInsert = "\tSYS_EPOLL_WAIT    = 232\n"
)

var epollWaitSyscallNumber = patch.Patch{
	Name:  "epoll-wait-syscall-number",
	Title: "Define SYS_EPOLL_WAIT in the runtime syscall table",
	Doc: "Adds the epoll_wait syscall number (232) next to SYS_EPOLL_CTL in the " +
		"amd64 Linux syscall definitions so the ENOSYS fallback has a number to call.",
	Group: patch.GroupToolchain,
	File:  "src/internal/runtime/syscall/defs_linux_amd64.go",
	Applied: func(content string) bool {
		return strings.Contains(content, defsMarker)
	},
	Transform: func(content string) (string, []string, error) {
		if !strings.Contains(content, defsAnchor) {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "SYS_EPOLL_CTL"}
		}
		return strings.Replace(content, defsAnchor, defsAnchor+defsInsert, 1), nil, nil
	},
}
