package catalog

import (
	"strings"

	"gomedic/internal/patch"
)

// EpollWait is implemented via epoll_pwait upstream. Under ESXi that returns
// ENOSYS (38), so the call is retried once through plain epoll_wait with the
// same arguments and that result is returned instead.

const (
	syscallMarker = "if e == 38 { // ENOSYS"

	syscallAnchor = "\tr1, _, e := Syscall6(SYS_EPOLL_PWAIT, uintptr(epfd), uintptr(ev), uintptr(maxev), uintptr(waitms), 0, 0)\n" +
		"\treturn int32(r1), e"

	syscallReplacement = "\tr1, _, e := Syscall6(SYS_EPOLL_PWAIT, uintptr(epfd), uintptr(ev), uintptr(maxev), uintptr(waitms), 0, 0)\n" +
		"\tif e == 38 { // ENOSYS\n" +
		"\t\tr1, _, e = Syscall6(SYS_EPOLL_WAIT, uintptr(epfd), uintptr(ev), uintptr(maxev), uintptr(waitms), 0, 0)\n" +
		"\t}\n" +
		"\treturn int32(r1), e"
)

var epollPwaitEnosysFallback = patch.Patch{
	Name:  "epoll-pwait-enosys-fallback",
	Title: "Fall back to epoll_wait when epoll_pwait is unimplemented",
	Doc: "Wraps the EpollWait body so an ENOSYS result from epoll_pwait retries " +
		"through epoll_wait with the same arguments.",
	Group: patch.GroupToolchain,
	File:  "src/internal/runtime/syscall/syscall_linux.go",
	Applied: func(content string) bool {
		return strings.Contains(content, syscallMarker)
	},
	Transform: func(content string) (string, []string, error) {
		if !strings.Contains(content, syscallAnchor) {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "EpollWait body"}
		}
		return strings.Replace(content, syscallAnchor, syscallReplacement, 1), nil, nil
	},
}
