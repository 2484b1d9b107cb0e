// Package pager hands buffered render output to an external pager and
// performs the advisory terminal-environment checks.
package pager

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/prettysitter/pkg/errors"
	"github.com/arthur-debert/prettysitter/pkg/logging"
	"github.com/arthur-debert/prettysitter/pkg/style"
)

// The pager invocation: -R passes SGR sequences through raw, -S keeps long
// node lines from wrapping.
const (
	pagerCommand = "less"
)

var pagerArgs = []string{"-RS"}

// Run pipes the full joined output into the pager, inheriting the
// controlling terminal, and blocks until it exits. By the time Run is
// called all output work is already done; only the paging step can fail.
func Run(input string) error {
	logger := logging.GetLogger("pager")
	logger.Debug().Str("command", pagerCommand).Strs("args", pagerArgs).Int("bytes", len(input)).Msg("Invoking pager")

	cmd := exec.Command(pagerCommand, pagerArgs...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if stderrors.As(err, &execErr) {
			return errors.Wrapf(err, errors.ErrPagerNotFound, "pager %q not found", pagerCommand)
		}
		return errors.Wrapf(err, errors.ErrPagerExec, "pager %q failed", pagerCommand)
	}
	return nil
}

// allowedTerms are the terminal types known to render the palette
// correctly.
var allowedTerms = []string{"xterm-256color", "screen-256color", "linux"}

// stdoutIsTTY is swappable for tests.
var stdoutIsTTY = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Warn surfaces environment mismatches on the diagnostic writer. All of
// them are advisory; rendering proceeds regardless.
func Warn(color, usePager bool, w io.Writer) {
	if color && !termAllowed(os.Getenv("TERM")) {
		fmt.Fprintln(w, style.Warning(
			"color might not appear properly, since env var TERM is not one of: "+strings.Join(allowedTerms, ", ")))
	}

	if usePager && !stdoutIsTTY() {
		fmt.Fprintln(w, style.Warning("paging might not work, since stdout was not detected as a TTY"))
	}

	if !usePager && stdoutIsTTY() {
		fmt.Fprintln(w, style.Warning("word wrapping might drive you crazy, either turn on the pager or do not use a TTY"))
	}
}

func termAllowed(term string) bool {
	for _, t := range allowedTerms {
		if term == t {
			return true
		}
	}
	return false
}
