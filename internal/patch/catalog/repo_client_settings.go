package catalog

import (
	"strings"

	"gomedic/internal/patch"
)

// The shared settings struct carries the explicit self path from the CLI down
// to the daemonize logic. Field alignment matches the surrounding struct.

const (
	clientSettingsAnchor = "\tSNI         string\n"
	clientSettingsInsert = "\tSelfPath    string\n"
)

var clientSettingsSelfPath = patch.Patch{
	Name:  "client-settings-self-path",
	Title: "Add the SelfPath field to the shared client settings",
	Doc: "Adds a SelfPath string field to the client settings struct, next to " +
		"the SNI field it travels with.",
	Group: patch.GroupRepo,
	File:  "internal/client/client.go",
	Applied: func(content string) bool {
		return strings.Contains(content, "SelfPath")
	},
	Transform: func(content string) (string, []string, error) {
		if !strings.Contains(content, clientSettingsAnchor) {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "SNI field"}
		}
		return strings.Replace(content, clientSettingsAnchor, clientSettingsAnchor+clientSettingsInsert, 1), nil, nil
	},
}
