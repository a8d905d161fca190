package catalog

import (
	"slices"
	"strings"

	"gomedic/internal/patch"
)

// The client entry point grows a --self-path flag: usage string, help line,
// backing variable, settings construction and argument parsing. Five sub-edits,
// each independently idempotent, reported under one aggregate outcome.

const (
	mainUsageOld = "--[foreground|fingerprint|proxy|process_name]"
	mainUsageNew = "--[foreground|fingerprint|proxy|process_name|self-path]"

	mainHelpSibling = `--sni\tWhen using TLS`
	mainHelpLine    = `	fmt.Println("\t\t--self-path\tExplicit path to the client binary for re-exec on daemonize")`

	mainVarAnchor = "\tcustomSNI   string\n"
	mainVarInsert = "\tselfPath    string\n"

	mainSettingsAnchor = "\t\tSNI:                  customSNI,\n"
	mainSettingsInsert = "\t\tSelfPath:             selfPath,\n"

	mainParseAnchor = "\tproxyaddress, _ := line.GetArgString(\"proxy\")\n"
	mainParseOld    = mainParseAnchor +
		"\tif len(proxyaddress) > 0 {\n" +
		"\t\tsettings.ProxyAddr = proxyaddress\n" +
		"\t}\n"
	mainParseNew = mainParseAnchor +
		"\tif len(proxyaddress) > 0 {\n" +
		"\t\tsettings.ProxyAddr = proxyaddress\n" +
		"\t}\n\n" +
		"\tuserSpecifiedSelfPath, err := line.GetArgString(\"self-path\")\n" +
		"\tif err == nil {\n" +
		"\t\tsettings.SelfPath = userSpecifiedSelfPath\n" +
		"\t}\n"
)

var mainSelfPathFlag = patch.Patch{
	Name:  "main-self-path-flag",
	Title: "Add the --self-path flag to the client entry point",
	Doc: "Threads a --self-path flag through the entry point: usage string, help " +
		"text, backing variable, settings construction and argument parsing.",
	Group: patch.GroupRepo,
	File:  "cmd/client/main.go",
	Applied: func(content string) bool {
		return strings.Contains(content, `GetArgString("self-path")`) &&
			strings.Contains(content, "SelfPath") &&
			strings.Contains(content, "--self-path")
	},
	Transform: func(content string) (string, []string, error) {
		var notes []string
		text := content

		if strings.Contains(text, mainUsageOld) {
			text = strings.Replace(text, mainUsageOld, mainUsageNew, 1)
			notes = append(notes, "usage")
		}

		if !strings.Contains(text, "--self-path") {
			lines := strings.Split(text, "\n")
			for i, line := range lines {
				if strings.Contains(line, mainHelpSibling) {
					lines = slices.Insert(lines, i+1, mainHelpLine)
					text = strings.Join(lines, "\n")
					notes = append(notes, "help-line")
					break
				}
			}
		}

		if strings.Contains(text, mainVarAnchor) && !strings.Contains(text, "selfPath") {
			text = strings.Replace(text, mainVarAnchor, mainVarAnchor+mainVarInsert, 1)
			notes = append(notes, "var")
		}

		if strings.Contains(text, mainSettingsAnchor) && !strings.Contains(text, "SelfPath") {
			text = strings.Replace(text, mainSettingsAnchor, mainSettingsAnchor+mainSettingsInsert, 1)
			notes = append(notes, "settings-field")
		}

		if strings.Contains(text, mainParseAnchor) && !strings.Contains(text, `GetArgString("self-path")`) {
			text = strings.Replace(text, mainParseOld, mainParseNew, 1)
			notes = append(notes, "flag-parse")
		}

		return text, notes, nil
	},
}
