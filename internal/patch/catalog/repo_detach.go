package catalog

import (
	"regexp"
	"slices"
	"strings"

	"gomedic/internal/patch"
)

// Inside restricted process namespaces os.Executable resolves to a
// /proc/self/exe style pseudo-path that does not survive re-exec. The detach
// module therefore gains three helpers that enumerate usable self-executable
// candidates, and Fork is rewritten to walk them in order.

const (
	detachRunAnchor = "func Run(settings *client.Settings) {"

	detachHelpers = `func normalizeSelfPath(path string) string {
	if path == "" {
		return ""
	}

	if unquoted, err := strconv.Unquote(path); err == nil {
		path = unquoted
	} else {
		path = strings.Trim(path, "\"'")
	}

	return path
}

func isProcPath(path string) bool {
	return strings.HasPrefix(path, "/proc/")
}

func selfExecCandidates(settings *client.Settings) []string {
	candidates := make([]string, 0, 4)
	seen := make(map[string]bool)
	add := func(path string) {
		path = normalizeSelfPath(path)
		if path == "" || seen[path] {
			return
		}
		if isProcPath(path) {
			return
		}
		seen[path] = true
		candidates = append(candidates, path)
	}

	if settings != nil && settings.SelfPath != "" {
		add(settings.SelfPath)
	}

	if len(os.Args) > 0 && os.Args[0] != "" {
		if p, err := exec.LookPath(os.Args[0]); err == nil {
			add(p)
			if abs, err := filepath.Abs(p); err == nil {
				add(abs)
			}
		}

		if abs, err := filepath.Abs(os.Args[0]); err == nil {
			add(abs)
		}
	}

	if p, err := os.Executable(); err == nil {
		add(p)
	}

	return candidates
}

`

	detachForkReplacement = `func Fork(settings *client.Settings, pretendArgv ...string) error {

	log.Println("Forking")

	candidates := selfExecCandidates(settings)
	if len(candidates) == 0 {
		return fmt.Errorf("unable to resolve self path for re-exec")
	}

	var lastErr error
	for _, candidate := range candidates {
		err := fork(candidate, nil, pretendArgv...)
		if err == nil {
			return nil
		}

		log.Println("Forking from", candidate, "failed:", err)
		lastErr = err
	}

	return lastErr
}
`
)

var detachForkRE = regexp.MustCompile(
	`func Fork\(settings \*client\.Settings, pretendArgv \.\.\.string\) error \{[\s\S]*?\n\}`)

var detachRequiredImports = []string{"fmt", "os", "os/exec", "path/filepath", "strconv", "strings"}

var detachSelfPathCandidates = patch.Patch{
	Name:  "detach-self-path-candidates",
	Title: "Resolve the self-executable path for re-exec in the detach module",
	Doc: "Adds normalizeSelfPath, isProcPath and selfExecCandidates helpers and " +
		"rewrites Fork to try each candidate path until one forks successfully.",
	Group: patch.GroupRepo,
	File:  "cmd/client/detach.go",
	Applied: func(content string) bool {
		return strings.Contains(content, "normalizeSelfPath") &&
			strings.Contains(content, "selfExecCandidates")
	},
	Transform: func(content string) (string, []string, error) {
		var notes []string

		text, changed, err := ensureDetachImports(content)
		if err != nil {
			return "", nil, err
		}
		if changed {
			notes = append(notes, "imports")
		}

		if !strings.Contains(text, detachRunAnchor) {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "Run"}
		}
		text = strings.Replace(text, detachRunAnchor, detachHelpers+detachRunAnchor, 1)
		notes = append(notes, "helpers")

		loc := detachForkRE.FindStringIndex(text)
		if loc == nil {
			return "", nil, &patch.AnchorNotFoundError{Anchor: "Fork function"}
		}
		text = text[:loc[0]] + detachForkReplacement + text[loc[1]:]
		notes = append(notes, "fork")

		return text, notes, nil
	},
}

// ensureDetachImports inserts any missing required imports into the existing
// import block, matching the block's own indentation and slotting new entries
// after path/filepath when it is present.
func ensureDetachImports(text string) (string, bool, error) {
	start := strings.Index(text, "import (")
	if start == -1 {
		return "", false, &patch.AnchorNotFoundError{Anchor: "import block"}
	}
	rel := strings.Index(text[start:], ")\n")
	if rel == -1 {
		return "", false, &patch.AnchorNotFoundError{Anchor: "import block end"}
	}
	block := text[start : start+rel+2]

	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")

	indent := "\t"
	for _, line := range lines[1 : len(lines)-1] {
		if strings.TrimSpace(line) != "" {
			indent = line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			break
		}
	}

	hasImport := func(name string) bool {
		for _, line := range lines[1 : len(lines)-1] {
			if strings.Trim(strings.TrimSpace(line), `"`) == name {
				return true
			}
		}
		return false
	}
	findImportLine := func(name string) int {
		for i, line := range lines {
			if strings.Trim(strings.TrimSpace(line), `"`) == name {
				return i
			}
		}
		return -1
	}

	changed := false
	for _, name := range detachRequiredImports {
		if hasImport(name) {
			continue
		}
		insertAt := findImportLine("path/filepath")
		if insertAt == -1 {
			insertAt = len(lines) - 1
		} else {
			insertAt++
		}
		lines = slices.Insert(lines, insertAt, indent+`"`+name+`"`)
		changed = true
	}

	if !changed {
		return text, false, nil
	}

	newBlock := strings.Join(lines, "\n") + "\n"
	return strings.Replace(text, block, newBlock, 1), true, nil
}
