package session

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// TerminalNavigator translates view paths into hints printed to the user.
type TerminalNavigator struct {
	out io.Writer
}

var _ repositories.Navigator = (*TerminalNavigator)(nil)

// NewTerminalNavigator creates a navigator writing to out.
func NewTerminalNavigator(out io.Writer) *TerminalNavigator {
	return &TerminalNavigator{out: out}
}

func (it *TerminalNavigator) Navigate(_ context.Context, path string) {
	switch path {
	case entities.LoginPath:
		_, _ = fmt.Fprintln(it.out, "Not signed in. Run 'depocheck login' to sign in.")
	case entities.DashboardPath:
		_, _ = fmt.Fprintln(it.out, "Run 'depocheck repos list' to see your repositories.")
	default:
		_, _ = fmt.Fprintf(it.out, "Continue at %s\n", path)
	}
}
