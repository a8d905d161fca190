package catalog

import (
	"strings"

	"gomedic/internal/patch"
)

// The build manager threads the self path through three places: the build
// config struct, the ldflags template that embeds build-time constants, and
// the argument list handed to the generated variable injection. Each edit is
// independently idempotent because a prior partial run may have applied some
// of them already.

const (
	buildFieldAnchor = "\tProxy, SNI, LogLevel string\n"
	buildFieldInsert = "\tSelfPath string\n"

	buildLdflagAnchor = "-X main.customSNI=%s -X main.useHostKerberos=%t"
	buildLdflagNew    = "-X main.customSNI=%s -X main.selfPath=%s -X main.useHostKerberos=%t"

	buildArgsAnchor = "config.Proxy, config.SNI, config.UseKerberosAuth"
	buildArgsNew    = "config.Proxy, config.SNI, config.SelfPath, config.UseKerberosAuth"
)

var buildManagerSelfPath = patch.Patch{
	Name:  "buildmanager-self-path",
	Title: "Thread SelfPath through the build manager",
	Doc: "Adds SelfPath to the build config struct, the ldflags template and the " +
		"variable-injection argument list. The three edits are checked separately " +
		"so a partial prior run is caught up.",
	Group: patch.GroupRepo,
	File:  "internal/server/webserver/buildmanager.go",
	Applied: func(content string) bool {
		return strings.Contains(content, "SelfPath") &&
			strings.Contains(content, "main.selfPath")
	},
	Transform: func(content string) (string, []string, error) {
		var notes []string
		text := content

		if strings.Contains(text, buildFieldAnchor) && !strings.Contains(text, "SelfPath") {
			text = strings.Replace(text, buildFieldAnchor, buildFieldAnchor+buildFieldInsert, 1)
			notes = append(notes, "config-field")
		} else if !strings.Contains(text, "SelfPath") {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "Proxy/SNI/LogLevel fields"}
		}

		if strings.Contains(text, buildLdflagAnchor) && !strings.Contains(text, "main.selfPath") {
			text = strings.Replace(text, buildLdflagAnchor, buildLdflagNew, 1)
			notes = append(notes, "ldflags")
		}

		if strings.Contains(text, buildArgsAnchor) && !strings.Contains(text, "config.SelfPath") {
			text = strings.Replace(text, buildArgsAnchor, buildArgsNew, 1)
			notes = append(notes, "injection-args")
		}

		return text, notes, nil
	},
}
