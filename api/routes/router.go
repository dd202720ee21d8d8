package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kisansetu/kisansetu-server/api/controllers"
	"github.com/kisansetu/kisansetu-server/api/middleware"
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
	"github.com/kisansetu/kisansetu-server/pkg/logger"
	"github.com/kisansetu/kisansetu-server/pkg/metrics"
	"github.com/kisansetu/kisansetu-server/pkg/redis"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	RedisClient *redis.Client
	HTTPMetrics *metrics.HTTPMetrics

	AuthService     authsvc.Service
	RegionService   regionsvc.Service
	AddressService  addresssvc.Service
	CustomerService customersvc.Service
	FarmerService   farmersvc.Service
	ProductService  productsvc.Service
	CartService     cartsvc.Service
	CheckoutService checkoutsvc.Service
	OrderService    ordersvc.Service
}

// NewRouter assembles the full HTTP surface with the middleware chain.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, redisPinger(deps.RedisClient)))
	})

	if deps.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.HTTPMetrics.Handler())
	}

	if cfg.Media.Dir != "" {
		fileServer := http.StripPrefix(cfg.Media.PublicPath+"/", http.FileServer(http.Dir(cfg.Media.Dir)))
		r.Get(cfg.Media.PublicPath+"/*", fileServer.ServeHTTP)
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(authRateLimit(registerPolicy, deps.RedisClient, logg)).Post("/register", controllers.AuthRegister(deps.AuthService, logg))
		r.With(authRateLimit(loginPolicy, deps.RedisClient, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/Address", func(r chi.Router) {
			r.Get("/GetAddress", controllers.GetAddress(deps.AddressService, logg))
			r.Post("/PostAddress", controllers.PostAddress(deps.AddressService, logg))
			r.Put("/UpdateAddress/{id}", controllers.UpdateAddress(deps.AddressService, logg))
			r.Delete("/DeleteAddress/{id}", controllers.DeleteAddress(deps.AddressService, logg))
		})

		r.Route("/District", func(r chi.Router) {
			r.Get("/getDistrict", controllers.GetDistrict(deps.RegionService, logg))
			r.Post("/addDistrict", controllers.AddDistrict(deps.RegionService, logg))
			r.Put("/updateDistrict/{id}", controllers.UpdateDistrict(deps.RegionService, logg))
			r.Delete("/deleteDistrict/{id}", controllers.DeleteDistrict(deps.RegionService, logg))
		})

		r.Route("/Taluk", func(r chi.Router) {
			r.Get("/GetTaluk", controllers.GetTaluk(deps.RegionService, logg))
			r.Post("/SaveTaluk", controllers.SaveTaluk(deps.RegionService, logg))
			r.Put("/TalukUpdate/{id}", controllers.TalukUpdate(deps.RegionService, logg))
			r.Delete("/TalukDelete/{id}", controllers.TalukDelete(deps.RegionService, logg))
		})

		r.Route("/Customer", func(r chi.Router) {
			r.Get("/getCustomer", controllers.GetCustomer(deps.CustomerService, logg))
			r.Get("/getCustomerById/{id}", controllers.GetCustomerByID(deps.CustomerService, logg))
			r.Get("/getCustomerByEmail", controllers.GetCustomerByEmail(deps.CustomerService, logg))
			r.Post("/postCustomerData", controllers.PostCustomerData(deps.CustomerService, logg))
			r.Put("/updateCustomer/{id}", controllers.UpdateCustomer(deps.CustomerService, logg))
			r.Delete("/deleteCustomer/{id}", controllers.DeleteCustomer(deps.CustomerService, logg))
		})

		r.Route("/Farmer", func(r chi.Router) {
			r.Get("/getFarmerData", controllers.GetFarmerData(deps.FarmerService, logg))
			r.Get("/getFarmerByEmail", controllers.GetFarmerByEmail(deps.FarmerService, logg))
			r.Post("/addFarmerdata", controllers.AddFarmerData(deps.FarmerService, logg))
			r.Put("/updateFarmer/{id}", controllers.UpdateFarmer(deps.FarmerService, logg))
			r.Delete("/deleteFarmer/{id}", controllers.DeleteFarmer(deps.FarmerService, logg))
		})

		r.Route("/Product", func(r chi.Router) {
			r.Get("/getProductData", controllers.GetProductData(deps.ProductService, logg))
			r.Get("/getProductDataByEmail", controllers.GetProductDataByEmail(deps.ProductService, logg))
			r.Post("/postProduct", controllers.PostProduct(deps.ProductService, logg))
			r.Put("/updateProduct/{id}", controllers.UpdateProduct(deps.ProductService, logg))
			r.Delete("/deleteProduct/{id}", controllers.DeleteProduct(deps.ProductService, logg))
		})

		r.Route("/Cart", func(r chi.Router) {
			r.Get("/GetCart", controllers.GetCart(deps.CartService, logg))
			r.Get("/GetCartbyMail", controllers.GetCartByMail(deps.CartService, logg))
			r.Post("/InsertCart", controllers.InsertCart(deps.CartService, logg))
			r.Put("/UpdateCart", controllers.UpdateCart(deps.CartService, logg))
			r.Delete("/DeleteCartByProductId", controllers.DeleteCartByProductID(deps.CartService, logg))
		})

		r.Route("/Order", func(r chi.Router) {
			r.Post("/InitiatePayment", controllers.InitiatePayment(deps.CheckoutService, logg))
			r.Post("/VerifyAndCreateOrder", controllers.VerifyAndCreateOrder(deps.CheckoutService, logg))
			r.Get("/GetCustomerOrders", controllers.GetCustomerOrders(deps.OrderService, logg))
			r.Get("/GetFarmerOrders", controllers.GetFarmerOrders(deps.OrderService, logg))
			r.With(middleware.RequireRole("admin", logg)).Get("/GetAllOrders", controllers.GetAllOrders(deps.OrderService, logg))
			r.With(middleware.RequireRole("admin", logg)).Post("/UpdateOrderStatus", controllers.UpdateOrderStatus(deps.OrderService, logg))
		})
	})

	return r
}

func authRateLimit(policy middleware.AuthRateLimitPolicy, client *redis.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	if client == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.AuthRateLimit(policy, client, logg)
}

func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
