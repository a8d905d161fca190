package catalog

import (
	"strings"
	"testing"
)

const detachFixture = `//go:build !windows

package main

import (
	"log"
	"os/signal"
	"syscall"

	"github.com/NHAS/reverse_ssh/internal/client"
)

func Run(settings *client.Settings) {
	//Try to elavate to root (in case we are a root:root setuid/gid binary)
	syscall.Setuid(0)
	syscall.Setgid(0)

	//Create our own process group, and ignore any  hang up signals
	syscall.Setsid()
	signal.Ignore(syscall.SIGHUP, syscall.SIGPIPE)

	client.Run(settings)
}

func Fork(settings *client.Settings, pretendArgv ...string) error {

	log.Println("Forking")

	err := fork("/proc/self/exe", nil, pretendArgv...)
	if err != nil {
		log.Println("Forking from /proc/self/exe failed:", err)
		return err
	}

	return nil
}
`

func TestDetachSelfPathCandidates(t *testing.T) {
	got := roundTrip(t, detachSelfPathCandidates, detachFixture)

	for _, marker := range []string{"normalizeSelfPath", "isProcPath", "selfExecCandidates"} {
		if !strings.Contains(got, "func "+marker) {
			t.Fatalf("helper %s not inserted", marker)
		}
	}

	// Helpers land immediately before Run.
	if !strings.Contains(got, "return candidates\n}\n\nfunc Run(settings *client.Settings) {") {
		t.Fatal("helpers not inserted before Run")
	}

	// Fork is rewritten to walk the candidate list.
	if strings.Contains(got, `fork("/proc/self/exe", nil, pretendArgv...)`) {
		t.Fatal("original Fork body still present")
	}
	if !strings.Contains(got, "candidates := selfExecCandidates(settings)") {
		t.Fatal("rewritten Fork does not enumerate candidates")
	}
	if !strings.Contains(got, `return fmt.Errorf("unable to resolve self path for re-exec")`) {
		t.Fatal("empty-candidate error missing")
	}

	// Run itself is untouched.
	if !strings.Contains(got, "signal.Ignore(syscall.SIGHUP, syscall.SIGPIPE)") {
		t.Fatal("Run body changed")
	}
}

func TestDetachSelfPathCandidates_AddsMissingImports(t *testing.T) {
	got := roundTrip(t, detachSelfPathCandidates, detachFixture)

	start := strings.Index(got, "import (")
	end := strings.Index(got[start:], ")\n")
	block := got[start : start+end]

	for _, name := range detachRequiredImports {
		if !strings.Contains(block, `"`+name+`"`) {
			t.Fatalf("import %q not added; block:\n%s", name, block)
		}
	}
	// Existing imports survive.
	for _, name := range []string{"log", "os/signal", "syscall", "github.com/NHAS/reverse_ssh/internal/client"} {
		if !strings.Contains(block, `"`+name+`"`) {
			t.Fatalf("existing import %q lost; block:\n%s", name, block)
		}
	}
}

func TestDetachSelfPathCandidates_ImportsAlreadyPresent(t *testing.T) {
	withImports := strings.Replace(detachFixture,
		"\t\"log\"\n\t\"os/signal\"\n\t\"syscall\"\n",
		"\t\"fmt\"\n\t\"log\"\n\t\"os\"\n\t\"os/exec\"\n\t\"os/signal\"\n\t\"path/filepath\"\n\t\"strconv\"\n\t\"strings\"\n\t\"syscall\"\n",
		1)

	got, out := applyToTemp(t, detachSelfPathCandidates, withImports)
	if out.Status != "modified" {
		t.Fatalf("expected modified, got %s", out.Status)
	}
	for _, note := range out.Notes {
		if note == "imports" {
			t.Fatal("imports reported as changed when already complete")
		}
	}
	if strings.Count(got, `"strconv"`) != 1 {
		t.Fatal("duplicate import inserted")
	}
}

func TestDetachSelfPathCandidates_MissingRunAnchor(t *testing.T) {
	drifted := strings.Replace(detachFixture, "func Run(settings *client.Settings) {", "func Run(s *client.Settings) {", 1)
	expectAnchorMiss(t, detachSelfPathCandidates, drifted, "Run")
}

func TestDetachSelfPathCandidates_MissingForkAnchor(t *testing.T) {
	drifted := strings.Replace(detachFixture, "func Fork(settings *client.Settings, pretendArgv ...string) error {", "func Fork(settings *client.Settings) error {", 1)
	expectAnchorMiss(t, detachSelfPathCandidates, drifted, "Fork function")
}
