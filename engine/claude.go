package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/namecast/namecast"
)

// DefaultClaudeTimeout bounds a single claude invocation. The CLI must not
// hang indefinitely; exceeding the budget is a timeout engine error.
const DefaultClaudeTimeout = 120 * time.Second

// ClaudeEngine invokes the claude CLI in print mode: one process per batch,
// the prompt as an argument, the reply on stdout.
type ClaudeEngine struct {
	cliPath string
	model   string
	timeout time.Duration
}

// ClaudeConfig holds configuration for the claude CLI engine.
type ClaudeConfig struct {
	CLIPath string        // Path to the claude binary (default: "claude")
	Model   string        // Model alias passed via --model (optional)
	Timeout time.Duration // Per-invocation budget (default: DefaultClaudeTimeout)
}

// NewClaudeEngine creates a new claude CLI engine.
func NewClaudeEngine(cfg ClaudeConfig) *ClaudeEngine {
	cliPath := cfg.CLIPath
	if cliPath == "" {
		cliPath = "claude"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultClaudeTimeout
	}

	return &ClaudeEngine{
		cliPath: cliPath,
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Complete runs the claude CLI with the given prompt and returns its stdout.
func (e *ClaudeEngine) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.cliPath, e.buildArgs(prompt)...) // #nosec G204 - cliPath is operator-configured

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &namecast.EngineError{
				Message:   "claude invocation exceeded " + e.timeout.String(),
				Cause:     ctx.Err(),
				Retryable: true,
				Timeout:   true,
			}
		}
		msg := "claude invocation failed"
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg += ": " + s
		}
		return "", &namecast.EngineError{
			Message:   msg,
			Cause:     err,
			Retryable: false,
		}
	}

	return stdout.String(), nil
}

// Validate checks that the claude CLI is available.
func (e *ClaudeEngine) Validate(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, e.cliPath, "--version") // #nosec G204 - cliPath is operator-configured
	if err := cmd.Run(); err != nil {
		return &namecast.EngineError{
			Message: "claude CLI not available",
			Cause:   err,
		}
	}
	return nil
}

func (e *ClaudeEngine) buildArgs(prompt string) []string {
	args := []string{"--print"}
	if e.model != "" {
		args = append(args, "--model", e.model)
	}
	return append(args, prompt)
}

// Verify ClaudeEngine implements Engine
var _ Engine = (*ClaudeEngine)(nil)
