// Package cli is the fieldctl command-line delivery: technician and admin
// commands on top of the same use cases the HTTP gateway serves.
package cli

import (
	"context"
	"log/slog"

	"fieldservice/internal/usecase"
)

// App holds what the commands run against.
type App struct {
	Auth     usecase.AuthUsecase
	Orders   usecase.OrderUsecase
	Users    usecase.UserUsecase
	Reports  usecase.ReportUsecase
	Scanner  usecase.QRCaptureUsecase
	Workflow usecase.WorkflowUsecase
	Prompter Prompter
	Logger   *slog.Logger

	closers []func() error
}

// Loader builds the App once the command line has been parsed.
type Loader func(ctx context.Context) (*App, error)

// OnClose registers fn to run when the command finishes.
func (a *App) OnClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close runs the registered closers in reverse order and returns the first error.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil

	return first
}
