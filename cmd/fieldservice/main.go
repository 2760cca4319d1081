package main

import (
	"context"
	"log/slog"
	"os"

	"fieldservice/config"
	"fieldservice/internal/delivery"
	"fieldservice/internal/delivery/http"
	"fieldservice/internal/delivery/http/middleware"
	"fieldservice/internal/delivery/http/router/handler"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/infra/apiclient"
	"fieldservice/internal/infra/auth"
	logs "fieldservice/internal/infra/log"
	"fieldservice/internal/infra/qrcode"
	"fieldservice/internal/infra/report"
	"fieldservice/internal/infra/session"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		session.NewRegistryFromConfig,
		newAPIClient,
	)
}

// newAPIClient creates the order server client. The gateway keeps no shared
// login: each request carries the bearer of the session that made it.
func newAPIClient(cfg *config.Config, logger *slog.Logger) (*apiclient.Client, error) {
	return apiclient.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			func(client *apiclient.Client) service.AuthGateway { return client },
			func(client *apiclient.Client) service.UserGateway { return client },
			func(client *apiclient.Client) service.OrderGateway { return client },
			auth.NewJWTInspector,
			qrcode.NewDecoder,
			newQRCodeService,
			newReportArchive,
		),
	)
}

// newQRCodeService creates the open-link QR service from config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.OpenBaseURL)
}

// newReportArchive opens the report bucket, if one is configured, and closes it on stop
func newReportArchive(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.ReportArchive, error) {
	archive, err := report.NewArchiveFromConfig(ctx, cfg, logger)
	if err != nil || archive == nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return archive.Close()
		},
	})

	return archive, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClientSessionService,
			impl.NewUserService,
			impl.NewOrderService,
			impl.NewReportService,
			impl.NewQRCaptureService,
			newWorkflowService,
		),
	)
}

// newWorkflowService tears down every open order view on stop
func newWorkflowService(lc fx.Lifecycle, params impl.WorkflowServiceParams) usecase.WorkflowUsecase {
	workflow := impl.NewWorkflowService(params)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			workflow.Close()

			return nil
		},
	})

	return workflow
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewScanHandler,
			handler.NewViewHandler,
			handler.NewOrderHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
