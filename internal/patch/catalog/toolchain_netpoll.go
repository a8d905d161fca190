package catalog

import (
	"strings"

	"gomedic/internal/patch"
)

// ESXi rejects EPOLLRDHUP registrations with EINVAL. When the add fails that
// way and the flag was requested, the flag is cleared and the registration is
// retried once; the retry's errno (or success) is what the caller sees.

const (
	netpollMarker = "ev.Events &^= syscall.EPOLLRDHUP"

	netpollAnchor = "\treturn syscall.EpollCtl(epfd, syscall.EPOLL_CTL_ADD, int32(fd), &ev)"

	netpollReplacement = "\terrno := syscall.EpollCtl(epfd, syscall.EPOLL_CTL_ADD, int32(fd), &ev)\n" +
		"\tif errno == _EINVAL && ev.Events&syscall.EPOLLRDHUP != 0 {\n" +
		"\t\tev.Events &^= syscall.EPOLLRDHUP\n" +
		"\t\terrno = syscall.EpollCtl(epfd, syscall.EPOLL_CTL_ADD, int32(fd), &ev)\n" +
		"\t}\n" +
		"\treturn errno"
)

var epollRdhupEinvalRetry = patch.Patch{
	Name:  "epollrdhup-einval-retry",
	Title: "Retry netpoll registration without EPOLLRDHUP on EINVAL",
	Doc: "Wraps the netpoll EpollCtl add so an EINVAL caused by EPOLLRDHUP clears " +
		"the flag and retries the registration once.",
	Group: patch.GroupToolchain,
	File:  "src/runtime/netpoll_epoll.go",
	Applied: func(content string) bool {
		return strings.Contains(content, netpollMarker)
	},
	Transform: func(content string) (string, []string, error) {
		if !strings.Contains(content, netpollAnchor) {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "EpollCtl add"}
		}
		return strings.Replace(content, netpollAnchor, netpollReplacement, 1), nil, nil
	},
}
