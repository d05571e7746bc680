// @title Cinema Showings API
// @version 1.0
// @description Showtime search and totals across the Cinehoyts and Cinemark chains.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT from /auth/token.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/time/rate"

	"cinemashowings/config"
	_ "cinemashowings/docs"
	"cinemashowings/internal/adapters/auth"
	"cinemashowings/internal/adapters/cinehoyts"
	"cinemashowings/internal/adapters/cinemark"
	"cinemashowings/internal/adapters/directory"
	"cinemashowings/internal/adapters/email"
	"cinemashowings/internal/adapters/upstream"
	httpdelivery "cinemashowings/internal/delivery/http"
	"cinemashowings/internal/delivery/http/controllers"
	"cinemashowings/internal/domain"
	"cinemashowings/internal/repository/postgres"
	"cinemashowings/internal/services"
)

func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dirs, err := loadDirectories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	byChain := directory.ByChain(dirs)
	hoytsDir, markDir := byChain[domain.ChainCinehoyts], byChain[domain.ChainCinemark]
	if hoytsDir == nil || markDir == nil {
		return errors.New("directory must describe both CINEHOYTS and CINEMARK")
	}

	limit := rate.Limit(cfg.Upstream.RatePerSecond)
	hoytsClient := upstream.NewClient(upstream.Config{BaseURL: cfg.Upstream.CinehoytsHost, Timeout: cfg.Upstream.Timeout, RateLimit: limit})
	markClient := upstream.NewClient(upstream.Config{BaseURL: cfg.Upstream.CinemarkHost, Timeout: cfg.Upstream.Timeout, RateLimit: limit})

	hoyts := services.NewChainService(
		services.NewCinehoytsSource(cinehoyts.NewHTTPFetcher(hoytsClient), hoytsDir, logger, cfg.Upstream.Concurrency),
		hoytsDir,
	)
	mark := services.NewChainService(
		services.NewCinemarkSource(cinemark.NewHTTPFetcher(markClient), logger, cfg.Upstream.Concurrency),
		markDir,
	)
	showings := services.NewShowingsService(logger, cfg.RequestTimeout, hoyts, mark)

	jwt := auth.NewJWT(cfg.JWTSecret)
	var clients []domain.Client
	if cfg.BotClientID != "" {
		clients = append(clients, domain.Client{ID: cfg.BotClientID, SecretHash: cfg.BotClientSecretHash, Roles: []string{"bot"}})
	} else {
		logger.Warn("BOT_CLIENT_ID not set, token endpoint will reject every client")
	}
	authService := services.NewAuthService(clients, auth.NewBcryptHasher(0), jwt, cfg.JWTExpiry)

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	reports := services.NewReportService(showings, mailer, email.NewTemplateRenderer(), logger)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:         logger,
		TokenVerifier:  jwt,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Auth:           controllers.NewAuthController(logger, authService),
		Showings:       controllers.NewShowingsController(logger, showings),
		Totals:         controllers.NewTotalsController(logger, showings),
		Info:           controllers.NewInfoController(showings),
		Reports:        controllers.NewReportsController(logger, reports),
		Health:         controllers.NewHealthController(cfg.Environment),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelDebug),
	}
	return serve(ctx, srv, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// loadDirectories prefers Postgres, then a YAML file, then the embedded data.
func loadDirectories(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]*domain.Directory, error) {
	var (
		dirs   []*domain.Directory
		source string
		err    error
	)
	switch {
	case cfg.DBUrl != "":
		source = "postgres"
		dirs, err = loadFromPostgres(ctx, cfg.DBUrl)
	case cfg.DirectoryPath != "":
		source = cfg.DirectoryPath
		dirs, err = directory.LoadFile(cfg.DirectoryPath)
	default:
		source = "embedded"
		dirs, err = directory.Embedded()
	}
	if err != nil {
		return nil, fmt.Errorf("load directory from %s: %w", source, err)
	}
	for _, d := range dirs {
		if err := directory.Validate(d); err != nil {
			return nil, fmt.Errorf("directory from %s: %w", source, err)
		}
	}
	logger.Info("directory loaded", "source", source, "chains", len(dirs))
	return dirs, nil
}

func loadFromPostgres(ctx context.Context, dsn string) ([]*domain.Directory, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return postgres.NewDirectoryRepository(db).LoadDirectories(ctx, []domain.Chain{domain.ChainCinehoyts, domain.ChainCinemark})
}
