package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kisansetu/kisansetu-server/api/routes"
	addresssvc "github.com/kisansetu/kisansetu-server/internal/addresses"
	authsvc "github.com/kisansetu/kisansetu-server/internal/auth"
	cartsvc "github.com/kisansetu/kisansetu-server/internal/cart"
	checkoutsvc "github.com/kisansetu/kisansetu-server/internal/checkout"
	customersvc "github.com/kisansetu/kisansetu-server/internal/customers"
	farmersvc "github.com/kisansetu/kisansetu-server/internal/farmers"
	ordersvc "github.com/kisansetu/kisansetu-server/internal/orders"
	productsvc "github.com/kisansetu/kisansetu-server/internal/products"
	regionsvc "github.com/kisansetu/kisansetu-server/internal/regions"
	"github.com/kisansetu/kisansetu-server/pkg/config"
	"github.com/kisansetu/kisansetu-server/pkg/db"
	"github.com/kisansetu/kisansetu-server/pkg/logger"
	"github.com/kisansetu/kisansetu-server/pkg/metrics"
	"github.com/kisansetu/kisansetu-server/pkg/migrate"
	"github.com/kisansetu/kisansetu-server/pkg/razorpay"
	"github.com/kisansetu/kisansetu-server/pkg/redis"
	"github.com/kisansetu/kisansetu-server/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	imageStore, err := storage.NewImageStore(cfg.Media)
	if err != nil {
		logg.Error(context.Background(), "failed to prepare image store", err)
		os.Exit(1)
	}

	gateway, err := razorpay.NewClient(cfg.Razorpay)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment gateway client", err)
		os.Exit(1)
	}

	conn := dbClient.DB()
	productRepo := productsvc.NewRepository(conn)

	authService, err := authsvc.NewService(authsvc.NewRepository(conn), cfg.JWT, cfg.Password)
	exitOnError(logg, "auth service", err)

	regionService, err := regionsvc.NewService(regionsvc.NewRepository(conn))
	exitOnError(logg, "region service", err)

	addressService, err := addresssvc.NewService(addresssvc.NewRepository(conn))
	exitOnError(logg, "address service", err)

	customerService, err := customersvc.NewService(customersvc.NewRepository(conn), imageStore)
	exitOnError(logg, "customer service", err)

	farmerService, err := farmersvc.NewService(farmersvc.NewRepository(conn), imageStore)
	exitOnError(logg, "farmer service", err)

	productService, err := productsvc.NewService(productRepo, imageStore)
	exitOnError(logg, "product service", err)

	cartService, err := cartsvc.NewService(cartsvc.NewRepository(conn))
	exitOnError(logg, "cart service", err)

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.NewRepository(conn), dbClient, gateway, cfg.Razorpay.KeySecret, logg)
	exitOnError(logg, "checkout service", err)

	orderService, err := ordersvc.NewService(ordersvc.NewRepository(conn), productRepo, imageStore)
	exitOnError(logg, "order service", err)

	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		DBPinger:    dbClient,
		RedisClient: redisClient,
		HTTPMetrics: metrics.NewHTTPMetrics(),

		AuthService:     authService,
		RegionService:   regionService,
		AddressService:  addressService,
		CustomerService: customerService,
		FarmerService:   farmerService,
		ProductService:  productService,
		CartService:     cartService,
		CheckoutService: checkoutService,
		OrderService:    orderService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func exitOnError(logg *logger.Logger, what string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+what, err)
	os.Exit(1)
}
