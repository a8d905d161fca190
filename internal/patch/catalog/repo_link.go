package catalog

import (
	"strings"

	"gomedic/internal/patch"
)

// The interactive link command learns the self-path flag: a help-map entry and
// a parse block shaped exactly like the neighboring sni flag's, including its
// terminal.ErrFlagNotSet error check.

const (
	linkHelpSibling = "\t\t\"sni\":               \"When TLS is in use, set a custom SNI for the client to connect with\",\n"
	linkHelpInsert  = "\t\t\"self-path\":         \"Explicit path to the client binary for re-exec on daemonize\",\n"

	linkParseAnchor = "\tbuildConfig.SNI, err = line.GetArgString(\"sni\")\n"
	linkParseOld    = linkParseAnchor +
		"\tif err != nil && err != terminal.ErrFlagNotSet {\n" +
		"\t\treturn err\n" +
		"\t}\n"
	linkParseNew = linkParseAnchor +
		"\tif err != nil && err != terminal.ErrFlagNotSet {\n" +
		"\t\treturn err\n" +
		"\t}\n\n" +
		"\tbuildConfig.SelfPath, err = line.GetArgString(\"self-path\")\n" +
		"\tif err != nil && err != terminal.ErrFlagNotSet {\n" +
		"\t\treturn err\n" +
		"\t}\n"
)

var linkCommandSelfPath = patch.Patch{
	Name:  "link-command-self-path",
	Title: "Add the self-path flag to the link command",
	Doc: "Adds a self-path entry to the link command's flag help map and parses " +
		"it into the build config following the sni flag's error-check pattern.",
	Group: patch.GroupRepo,
	File:  "internal/server/commands/link.go",
	Applied: func(content string) bool {
		return strings.Contains(content, "self-path") &&
			strings.Contains(content, "SelfPath")
	},
	Transform: func(content string) (string, []string, error) {
		var notes []string
		text := content

		if strings.Contains(text, linkHelpSibling) && !strings.Contains(text, "self-path") {
			text = strings.Replace(text, linkHelpSibling, linkHelpSibling+linkHelpInsert, 1)
			notes = append(notes, "help-entry")
		}

		if strings.Contains(text, linkParseAnchor) && !strings.Contains(text, `GetArgString("self-path")`) {
			text = strings.Replace(text, linkParseOld, linkParseNew, 1)
			notes = append(notes, "flag-parse")
		}

		return text, notes, nil
	},
}
