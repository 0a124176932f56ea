package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	_ "github.com/MikeMC777/homefood/docs"
	"github.com/MikeMC777/homefood/internal/account"
	"github.com/MikeMC777/homefood/internal/business"
	"github.com/MikeMC777/homefood/internal/catalog"
	"github.com/MikeMC777/homefood/internal/config"
	"github.com/MikeMC777/homefood/internal/health"
	"github.com/MikeMC777/homefood/internal/logx"
	"github.com/MikeMC777/homefood/internal/order"
	"github.com/MikeMC777/homefood/internal/payment"
	"github.com/MikeMC777/homefood/internal/report"
	"github.com/MikeMC777/homefood/internal/session"
	"github.com/MikeMC777/homefood/internal/storage"
)

func init() {
	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// @title        Home Food Storefront API
// @version      1.0
// @description  Catalog, orders, payments and reporting for a home food kitchen.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logx.New(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := storage.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	if err := storage.Migrate(cfg.PostgresDSN); err != nil {
		logger.Fatal().Err(err).Msg("migrations")
	}

	accounts := account.NewService(account.NewPGRepo(pool))
	if err := accounts.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal().Err(err).Msg("seed admin")
	}
	logger.Info().Str("username", cfg.AdminUsername).Msg("admin account seeded")

	store, err := session.NewRedisStore(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer store.Close()

	files, err := business.NewDiskStore(cfg.UploadDir, "/uploads")
	if err != nil {
		logger.Fatal().Err(err).Msg("upload dir")
	}

	productRepo := catalog.NewPGRepo(pool)
	paymentRepo := payment.NewPGRepo(pool)
	orders := order.NewService(order.NewPGRepo(pool), productRepo, paymentRepo)
	hs := health.New(logger, 15*time.Second, map[string]health.Pinger{"postgres": pool, "redis": store})

	app := &App{
		Log:       logger,
		Sessions:  session.NewManager(store, cfg.SessionCookie, cfg.SessionTTL, cfg.CookieSecure),
		Accounts:  accounts,
		Catalog:   catalog.NewService(productRepo),
		Orders:    orders,
		Payments:  payment.NewService(paymentRepo),
		Reports:   report.NewService(report.NewPGRepo(pool), orders, cfg.ReportLocation),
		Business:  business.NewService(business.NewPGRepo(pool), files, cfg.UploadMaxBytes),
		Health:    hs,
		PublicDir: cfg.PublicDir,
		UploadDir: cfg.UploadDir,
		MaxUpload: cfg.UploadMaxBytes,
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Msg("grpc listen")
	}
	go hs.Run(ctx)
	go func() {
		logger.Info().Str("addr", cfg.GRPCAddr).Msg("grpc health listening")
		if err := hs.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("grpc server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	hs.Stop()
}
