package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"billest/internal/config"
	"billest/internal/core"
	"billest/internal/db"
	"billest/internal/http/handler"
	"billest/internal/http/middleware"
	"billest/internal/http/payload"
	"billest/internal/http/server"
	"billest/internal/repository"
	"billest/pkg/log"
	"billest/pkg/password"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		// no configured logger yet
		log.NewZapLogger("billest", zapcore.InfoLevel, "").Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := log.NewZapLogger("billest", level, config.LogFile)
	defer logger.Sync()

	dbConn, err := db.Open(db.Options{
		Driver:       config.DBDriver,
		DSN:          config.DBConnectionURL,
		MaxOpenConns: config.DBMaxOpenConns,
		LogSQL:       config.DBLogSQL,
	})
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewBillRepository(dbConn)

	applied, err := repo.MigrateSchema(context.Background())
	if err != nil {
		logger.Errorw("failed to migrate database schema", "error", err)
		return err
	}
	logger.Infow("database schema up to date", "applied", applied)

	// biller
	biller := core.NewBiller(
		logger,
		repo,
		NewPasswordHasher(config.PasswordHasher),
		core.DefaultTariff,
		time.Now)

	srv := server.NewHTTP(logger, NewRouter(logger, biller, config.AllowedOrigin), config.Port)
	return run(srv)
}

// NewRouter mounts the API on a mux and wraps it in the middleware chain.
func NewRouter(logger *zap.SugaredLogger, biller handler.BillService, allowedOrigin string) http.Handler {
	mux := http.NewServeMux()
	handler.NewBillHandler(logger, payload.DecodeValidator{}, biller).RegisterRoutes(mux)

	// the request id is set first so access logs can carry it
	var hdlr http.Handler = mux
	hdlr = middleware.NewCORSMiddleware(allowedOrigin).CORS(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	return hdlr
}

func NewPasswordHasher(name string) core.PasswordHasher {
	if name == config.HasherSHA256 {
		return password.SHA256Hasher{}
	}
	return password.NewBcryptHasher(0)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
