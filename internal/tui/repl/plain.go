// ============================================================================
// MunchEx - Arithmetic language front end
// ============================================================================
//
// Package:     repl
// Description: Line mode shell for pipes and dumb terminals
// Author:      Munch42
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunPlain reads lines from in until EOF or ctx is done, printing the prompt
// before each line and the rendered result after it
func RunPlain(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	m := New(cfg)
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(out, m.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		ev := m.session.EvaluateAndRecord(ctx, line)
		fmt.Fprintln(out, ev.Output)
	}
}
