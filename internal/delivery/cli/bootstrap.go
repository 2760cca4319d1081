package cli

import (
	"context"
	"os"

	"fieldservice/config"
	"fieldservice/internal/infra/apiclient"
	"fieldservice/internal/infra/auth"
	logs "fieldservice/internal/infra/log"
	"fieldservice/internal/infra/qrcode"
	"fieldservice/internal/infra/report"
	"fieldservice/internal/infra/session"
	"fieldservice/internal/usecase/impl"

	"github.com/pkg/errors"
)

// Bootstrap is the production Loader. The logger writes to stderr so stdout
// only carries command output.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open session store")
	}

	client, err := apiclient.New(cfg, store, logger)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewJWTInspector()
	links := qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.OpenBaseURL)

	archive, err := report.NewArchiveFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	workflow := impl.NewWorkflowService(impl.WorkflowServiceParams{
		Gateway: client,
		Tokens:  tokens,
		Config:  cfg,
		Logger:  logger,
	})

	app := &App{
		Auth: impl.NewAuthService(impl.AuthServiceParams{
			Gateway: client,
			Store:   store,
			Tokens:  tokens,
			Logger:  logger,
		}),
		Orders: impl.NewOrderService(impl.OrderServiceParams{
			Gateway: client,
			QRCodes: links,
			Logger:  logger,
		}),
		Users: impl.NewUserService(impl.UserServiceParams{
			Gateway: client,
			Logger:  logger,
		}),
		Reports: impl.NewReportService(impl.ReportServiceParams{
			Gateway: client,
			Archive: archive,
			Logger:  logger,
		}),
		Scanner:  impl.NewQRCaptureService(qrcode.NewDecoder(), links, logger),
		Workflow: workflow,
		Prompter: NewFormPrompter(),
		Logger:   logger,
	}

	if archive != nil {
		app.OnClose(archive.Close)
	}
	app.OnClose(func() error {
		workflow.Close()

		return nil
	})

	return app, nil
}
