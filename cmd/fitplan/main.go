package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/api"
	"github.com/daithanwa/dsi202-2025/internal/cli"
	"github.com/daithanwa/dsi202-2025/internal/config"
	"github.com/daithanwa/dsi202-2025/internal/db"
	"github.com/daithanwa/dsi202-2025/internal/i18n"
	"github.com/daithanwa/dsi202-2025/internal/logging"
	"github.com/daithanwa/dsi202-2025/internal/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	flags := flag.NewFlagSet("fitplan", flag.ContinueOnError)
	flags.SetOutput(out)
	configPath := flags.String("config", "", "path to config.yaml")
	if err := flags.Parse(args); err != nil {
		return err
	}

	command, rest := "serve", flags.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	switch command {
	case "serve":
		return serve(cfg)
	case "reset-password":
		return resetPassword(cfg, rest, out)
	case "seed-catalog":
		if len(rest) != 1 {
			return errors.New("usage: fitplan seed-catalog <file>")
		}
		return cli.RunSeedCatalogCommand(databaseOptions(cfg), rest[0], out)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func resetPassword(cfg config.Config, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	flags.SetOutput(out)
	prompt := flags.Bool("prompt", false, "read the new password from the terminal")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("usage: fitplan reset-password [--prompt] <username>")
	}
	return cli.RunResetPasswordCommand(cli.ResetPasswordOptions{
		Database: databaseOptions(cfg),
		Username: flags.Arg(0),
		Prompt:   *prompt,
		Stdin:    os.Stdin,
		Out:      out,
	})
}

func serve(cfg config.Config) error {
	appLogger, err := logging.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	location := cfg.Location()
	time.Local = location

	dbOptions := databaseOptions(cfg)
	dbOptions.Logger = appLogger.With("component", "gorm")
	database, err := db.Open(dbOptions)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	limiter, closeLimiter, err := newLoginLimiter(cfg, appLogger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	handler, err := api.NewHandler(database, api.Options{
		SecretKey:       cfg.SecretKey,
		Location:        location,
		CookieSecure:    cfg.CookieSecure,
		PromptPayMobile: cfg.PromptPayMobile,
		I18n:            i18nManager,
		Logger:          appLogger,
		LoginLimiter:    limiter,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", "error", err)
		}
	}()

	appLogger.Info("fitplan listening",
		"addr", "http://0.0.0.0:"+cfg.Port,
		"db_driver", dbOptions.Driver,
		"tz", location.String(),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "FitPlan",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)
	return app
}

// newLoginLimiter shares login counters through Redis when an address is
// configured and keeps them in process otherwise.
func newLoginLimiter(cfg config.Config, appLogger *logging.Logger) (ratelimit.AttemptLimiter, func(), error) {
	limit := cfg.LoginRateLimitPerMinute
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(limit, time.Minute), func() {}, nil
	}

	limiter, err := ratelimit.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, "fitplan:login", limit, time.Minute)
	if err != nil {
		return nil, nil, err
	}
	limiter.OnError = func(err error) {
		appLogger.Warn("login rate limiter redis error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := limiter.Ping(ctx); err != nil {
		_ = limiter.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	return limiter, func() { _ = limiter.Close() }, nil
}

func databaseOptions(cfg config.Config) db.Options {
	return db.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	}
}
