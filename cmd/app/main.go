package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"loyalty/cmd/fx/auth_fx"
	"loyalty/cmd/fx/config_fx"
	"loyalty/cmd/fx/controllers_fx"
	"loyalty/cmd/fx/customer_fx"
	"loyalty/cmd/fx/db_fx"
	"loyalty/cmd/fx/mailing_fx"
	"loyalty/cmd/fx/notification_fx"
	"loyalty/cmd/fx/scan_fx"
	"loyalty/cmd/fx/sweep_fx"
	"loyalty/cmd/fx/wallet_fx"
	"loyalty/internal/api/controllers"
	"loyalty/internal/config"
	"loyalty/internal/services"
	"loyalty/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		auth_fx.Module,
		customer_fx.Module,
		scan_fx.Module,
		notification_fx.Module,
		mailing_fx.Module,
		sweep_fx.Module,
		wallet_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartSweepScheduler),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := cfg.Server.Host + ":" + cfg.Server.Port
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// StartSweepScheduler runs the daily milestone/inactivity sweep at the
// configured hour until shutdown.
func StartSweepScheduler(lc fx.Lifecycle, sweepService services.SweepServiceInterface, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go runDailySweep(ctx, sweepService, cfg.Sweep.Hour)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func runDailySweep(ctx context.Context, sweepService services.SweepServiceInterface, hour int) {
	for {
		timer := time.NewTimer(time.Until(nextSweepAt(time.Now(), hour)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		log.Println("Running scheduled sweep")
		if _, err := sweepService.Run(ctx); err != nil {
			log.Printf("Scheduled sweep failed: %v", err)
		}
	}
}

func nextSweepAt(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

func ProvideRouter(
	scanController *controllers.ScanController,
	customerController *controllers.CustomerController,
	authController *controllers.AuthController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
	walletController *controllers.WalletController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, scanController, customerController, authController,
		notificationController, adminController, walletController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	scanController *controllers.ScanController,
	customerController *controllers.CustomerController,
	authController *controllers.AuthController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
	walletController *controllers.WalletController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)

	// Scanning devices and pass holders are unauthenticated.
	scanGroup := r.Group("/api/scan")
	scanGroup.POST("", scanController.Scan)
	scanGroup.POST("/scan-wallet", scanController.ScanWallet)

	walletGroup := r.Group("/api/wallet")
	walletGroup.GET("/business-qr/:businessId", walletController.BusinessQR)
	walletGroup.POST("/register", walletController.Register)
	walletGroup.GET("/pass/:customerId", walletController.Pass)

	customerGroup := r.Group("/api/customers")
	customerGroup.POST("/join", customerController.Join)
	customerGroup.Use(middleware.JWTAuthMiddleware())
	customerGroup.GET("", customerController.List)
	customerGroup.POST("/add", customerController.Add)
	customerGroup.POST("/scan", scanController.Scan)
	customerGroup.PUT("/:id/reward", customerController.AssignReward)

	notificationGroup := r.Group("/api/notifications")
	notificationGroup.Use(middleware.JWTAuthMiddleware())
	notificationGroup.POST("/send", notificationController.Send)
	notificationGroup.POST("/broadcast", notificationController.Broadcast)
	notificationGroup.POST("/admin-template", notificationController.SendTemplate)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	adminGroup.GET("/businesses", adminController.ListBusinesses)
	adminGroup.POST("/businesses", authController.Register)
	adminGroup.GET("/businesses/:id", adminController.GetBusiness)
	adminGroup.DELETE("/businesses/:id", adminController.DeleteBusiness)
	adminGroup.POST("/sweep", adminController.RunSweep)
}
