package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/embutidos-web/internal/application/analytics"
	"github.com/jhoicas/embutidos-web/internal/application/auth"
	"github.com/jhoicas/embutidos-web/internal/application/gate"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/infrastructure/api"
	"github.com/jhoicas/embutidos-web/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/embutidos-web/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/embutidos-web/internal/interfaces/http"
	"github.com/jhoicas/embutidos-web/pkg/config"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// Version se fija al compilar con -ldflags "-X main.Version=...".
var Version = "dev"

const appName = "embutidos-web"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	serve := func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), logLevel)
	}

	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Panel de administración de Embutidos Mardely",
		SilenceUsage: true,
		RunE:         serve,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (trace, debug, info, warn, error); por defecto LOG_LEVEL")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Arranca el servidor web",
		RunE:  serve,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", appName, Version)
		},
	})
	return cmd
}

func run(ctx context.Context, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if logLevel == "" {
		logLevel = cfg.App.LogLevel
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: logLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		view.BusinessLocation = loc
	} else {
		log.Warn().Err(err).Str("timezone", cfg.App.Timezone).Msg("zona horaria inválida, se usa la predeterminada")
	}

	if cfg.Form.Secret == "" {
		// Los formularios abiertos antes de un reinicio quedan inválidos.
		cfg.Form.Secret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("FORM_TOKEN_SECRET vacío, se generó uno aleatorio")
	}

	m := metrics.New()
	client := api.New(cfg.API, log, m)
	composer := view.NewComposer(log, m)
	docs := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(client, auth.CookieConfig{
		RememberDays: cfg.Session.RememberDays,
		QRDays:       cfg.Session.QRDays,
	}, log)

	renderer, err := httpRouter.NewRenderer()
	if err != nil {
		return fmt.Errorf("plantillas: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(renderer),
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Renderer: renderer,
		Gate:     gate.New(authUC, m, log),
		Session:  cfg.Session,
		Form:     cfg.Form,
		Log:      log,
		Metrics:  m.Handler(),

		AuthUC:       authUC,
		DashboardUC:  analytics.NewDashboardUseCase(client.Dashboard(), composer),
		ProductUC:    usecase.NewProductUseCase(client, composer),
		InventoryUC:  usecase.NewInventoryUseCase(client, client, composer),
		SalesUC:      usecase.NewSalesUseCase(client, client, client, composer),
		PresaleUC:    usecase.NewPresaleUseCase(client, client, client, composer),
		PaymentUC:    usecase.NewPaymentUseCase(client, client, composer),
		UserUC:       usecase.NewUserUseCase(client, client, docs, composer),
		ReportUC:     usecase.NewReportUseCase(client, client, client, docs, composer),
		PredictionUC: usecase.NewPredictionUseCase(client, client, composer),
		ParameterUC:  usecase.NewParameterUseCase(client, composer),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
