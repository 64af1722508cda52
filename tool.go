package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// maxStderr bounds the standard error kept for diagnostics.
const maxStderr = 4 * 1024

// Tool is an external command, Argv holds the executable and any leading
// arguments.
type Tool struct {
	Name string
	Argv []string
}

// NewTool returns a Tool for the whitespace separated command line s.  There
// is no quoting, so an executable path containing spaces cannot be expressed.
func NewTool(name, s string) Tool {
	return Tool{Name: name, Argv: strings.Fields(s)}
}

func (t Tool) String() string {
	return strings.Join(t.Argv, " ")
}

// Run executes the tool with args appended and waits for it to exit.  The
// captured standard output is returned on success, otherwise an
// *ExecutionError describes the failure.  The tool reads its own input, only
// its (short) output passes through this process.
func (t Tool) Run(ctx context.Context, args ...string) ([]byte, error) {
	if len(t.Argv) == 0 {
		return nil, &ExecutionError{Tool: t.Name, ExitCode: -1,
			Err: errors.New("empty command")}
	}

	argv := append(append([]string{}, t.Argv[1:]...), args...)
	cmd := exec.CommandContext(ctx, t.Argv[0], argv...)

	var stdout bytes.Buffer
	stderr := &limitedBuffer{limit: maxStderr}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		execErr := &ExecutionError{
			Tool:     t.String(),
			ExitCode: -1,
			Stderr:   stderr.String(),
			Err:      err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			execErr.Err = fmt.Errorf("%w: %s", ctxErr, err)
		}

		return nil, execErr
	}

	return stdout.Bytes(), nil
}

// limitedBuffer keeps the first limit bytes written to it and discards the
// rest, reporting full writes so the child never blocks on stderr.
type limitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if n := b.limit - b.buf.Len(); n > 0 {
		if len(p) > n {
			b.buf.Write(p[:n])
			b.truncated = true
		} else {
			b.buf.Write(p)
		}
	} else if len(p) > 0 {
		b.truncated = true
	}
	return len(p), nil
}

func (b *limitedBuffer) String() string {
	if b.truncated {
		return b.buf.String() + "..."
	}
	return b.buf.String()
}
