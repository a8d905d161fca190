// Package goenv resolves the root of the Go toolchain installation to patch.
package goenv

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

type ResolveReason string

const (
	ReasonBinaryMissing ResolveReason = "binary-missing"
	ReasonCommandFailed ResolveReason = "command-failed"
	ReasonEmptyOutput   ResolveReason = "empty-output"
	ReasonTimeout       ResolveReason = "timeout"
)

// ResolveError distinguishes "toolchain not installed" from "toolchain
// installed but misconfigured" so the message can name the right remedy.
type ResolveError struct {
	Reason ResolveReason
	Err    error
}

func (e *ResolveError) Error() string {
	switch e.Reason {
	case ReasonBinaryMissing:
		return "go binary not found; set --goroot or GOROOT"
	case ReasonCommandFailed:
		return "failed to run 'go env GOROOT'; set --goroot or GOROOT"
	case ReasonEmptyOutput:
		return "GOROOT is empty; set --goroot or GOROOT"
	case ReasonTimeout:
		return "'go env GOROOT' timed out; set --goroot or GOROOT"
	}
	return "unable to resolve GOROOT; set --goroot or GOROOT"
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Resolver determines GOROOT. The environment lookup and command runner are
// injectable so the precedence logic is testable without a toolchain.
type Resolver struct {
	LookupEnv func(key string) (string, bool)
	LookPath  func(file string) (string, error)
	Output    func(ctx context.Context, name string, args ...string) ([]byte, error)

	// Timeout bounds the introspection subprocess when the caller's context
	// carries no deadline, so a wedged toolchain doesn't hang the run.
	Timeout time.Duration
}

func NewResolver() *Resolver {
	return &Resolver{
		LookupEnv: os.LookupEnv,
		LookPath:  exec.LookPath,
		Output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		Timeout: 10 * time.Second,
	}
}

// Resolve returns the toolchain root.
//
// Precedence:
//  1. explicit (if non-empty)
//  2. GOROOT env var
//  3. `go env GOROOT`, trimmed
func (r *Resolver) Resolve(ctx context.Context, explicit string) (string, error) {
	if root := strings.TrimSpace(explicit); root != "" {
		return root, nil
	}

	if env, ok := r.LookupEnv("GOROOT"); ok && strings.TrimSpace(env) != "" {
		return strings.TrimSpace(env), nil
	}

	if _, err := r.LookPath("go"); err != nil {
		return "", &ResolveError{Reason: ReasonBinaryMissing, Err: err}
	}

	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		timeout := r.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := r.Output(cmdCtx, "go", "env", "GOROOT")
	if err != nil {
		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			return "", &ResolveError{Reason: ReasonTimeout, Err: err}
		}
		return "", &ResolveError{Reason: ReasonCommandFailed, Err: err}
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", &ResolveError{Reason: ReasonEmptyOutput}
	}
	return root, nil
}
