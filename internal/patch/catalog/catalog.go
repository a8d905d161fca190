// Package catalog holds every patch this tool knows how to apply: three
// toolchain patches working around ESXi's incomplete epoll implementation,
// and five repository patches adding explicit self-path resolution for
// re-exec on daemonize.
//
// All anchors and replacements are literal text from the known target file
// versions. A missing anchor means the target drifted from those versions,
// and the run stops there.
package catalog

import "gomedic/internal/patch"

// Registration order is application order within each group.
func init() {
	for _, p := range []patch.Patch{
		epollWaitSyscallNumber,
		epollPwaitEnosysFallback,
		epollRdhupEinvalRetry,

		detachSelfPathCandidates,
		mainSelfPathFlag,
		clientSettingsSelfPath,
		linkCommandSelfPath,
		buildManagerSelfPath,
	} {
		patch.Register(p)
	}
}
