package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword //nolint:gochecknoglobals // test seam

// commandContext returns the context cobra attached to cmd, if any.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// terminalScope binds one CLI invocation to the session file.
// Views live as long as the process.
func terminalScope(sessions *session.FileSessionRepository, out io.Writer) repositories.ClientScope {
	return repositories.ClientScope{
		Session:   sessions,
		Navigator: session.NewTerminalNavigator(out),
		Views:     session.NewMemoryViewStateRepository(),
	}
}

// allowed runs the route guard for the view a command stands for.
func allowed(ctx context.Context, scope repositories.ClientScope, path string) bool {
	decision := entities.EvaluateRoute(path, scope.Session.Get(ctx).Authenticated())
	if decision.Redirects() {
		scope.Navigator.Navigate(ctx, decision.Location)
		return false
	}
	return true
}

// prompter reads answers from the command's input.
type prompter struct {
	reader *bufio.Reader
	file   *os.File
	out    io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	file, _ := in.(*os.File)
	return &prompter{reader: bufio.NewReader(in), file: file, out: cmd.OutOrStdout()}
}

// Line prints label and reads one trimmed line. A last line without a
// newline is accepted.
func (it *prompter) Line(label string) (string, error) {
	if _, err := fmt.Fprintf(it.out, "%s: ", label); err != nil {
		return "", err
	}
	line, err := it.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}

// Secret reads without echo on a terminal and falls back to a plain line
// when the input is piped.
func (it *prompter) Secret(label string) (string, error) {
	if it.file == nil || !term.IsTerminal(int(it.file.Fd())) {
		return it.Line(label)
	}

	if _, err := fmt.Fprintf(it.out, "%s: ", label); err != nil {
		return "", err
	}
	secret, err := readPassword(int(it.file.Fd()))
	_, _ = fmt.Fprintln(it.out)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return string(secret), nil
}

// valueOrPrompt returns the flag value, prompting when it is empty.
func valueOrPrompt(cmd *cobra.Command, p *prompter, flag, label string) (string, error) {
	value, _ := cmd.Flags().GetString(flag)
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}
	return p.Line(label)
}
