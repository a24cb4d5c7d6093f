package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/docs"
	"github.com/aaravmahajanofficial/pod-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/pod-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/pod-storefront/internal/cache"
	"github.com/aaravmahajanofficial/pod-storefront/internal/config"
	"github.com/aaravmahajanofficial/pod-storefront/internal/events"
	"github.com/aaravmahajanofficial/pod-storefront/internal/health"
	"github.com/aaravmahajanofficial/pod-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/pod-storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/pod-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/pod-storefront/internal/services"
	"github.com/aaravmahajanofficial/pod-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/exchangerates"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/printful"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/pod-storefront/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Print-on-demand Storefront API
//	@version					1.0
//	@description				Catalog, regional pricing, carts, checkout and fulfillment for a print-on-demand shop.
//	@host						localhost:8080
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	shutdownTracer, err := telemetry.InitTracerProvider(context.Background(), cfg.OTel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	db, repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	var publisher events.Publisher = events.NewNoopPublisher()
	if cfg.Kafka.KafkaEnabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		slog.Info("Publishing order events", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}

	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("⚠️ Error closing event publisher", slog.String("error", err.Error()))
		}

		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}

		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// External clients
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	printfulClient := printful.NewClient(printful.Config{
		BaseURL:        cfg.Fulfillment.BaseURL,
		APIKey:         cfg.Fulfillment.APIKey,
		Timeout:        cfg.Fulfillment.Timeout,
		RequestsPerSec: cfg.Fulfillment.RequestsPerSec,
		Burst:          cfg.Fulfillment.Burst,
	})
	ratesClient := exchangerates.NewClient(cfg.ExchangeRates.Sources, cfg.ExchangeRates.Timeout)

	rateCache := service.NewMemoryRateCache(nil)
	if cfg.ExchangeRates.Shared {
		rateCache = service.NewRedisRateCache(redisCache)
	}

	// Services
	engine := pricing.NewEngine(cfg.Pricing)
	eventStore := repository.NewEventStore(redisClient)
	rateService := service.NewExchangeRateService(ratesClient, rateCache, cfg.ExchangeRates.TTL, cfg.ExchangeRates.Fallback)
	catalogService := service.NewCatalogService(repos.Products, rateService, engine, redisCache, cfg.Cache.DefaultTTL)
	cartService := service.NewCartService(repos.Carts, repository.NewSessionCartStore(redisClient), repos.Products)
	notificationService := service.NewNotificationService(repos.Notifications, emailClient)
	newsletterService := service.NewNewsletterService(repos.Subscribers, notificationService, cfg.SendGrid.ContactInbox)
	fulfillmentService := service.NewFulfillmentService(repos.Orders, printfulClient, eventStore, publisher,
		cfg.Fulfillment.WebhookSecret, cfg.Fulfillment.ConfirmOrders)
	orderService := service.NewOrderService(service.OrderDeps{
		Orders:        repos.Orders,
		Products:      repos.Products,
		EventStore:    eventStore,
		Carts:         cartService,
		Rates:         rateService,
		Engine:        engine,
		Stripe:        stripeClient,
		Fulfillment:   fulfillmentService,
		Notifications: notificationService,
		Publisher:     publisher,
		URLs: service.CheckoutURLs{
			BaseURL:     cfg.BaseURL,
			SuccessPath: cfg.Stripe.SuccessPath,
			CancelPath:  cfg.Stripe.CancelPath,
		},
	})

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	rateHandler := handlers.NewExchangeRateHandler(rateService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, fulfillmentService)
	webhookHandler := handlers.NewWebhookHandler(orderService, fulfillmentService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	auth := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	admin := func(next http.Handler) http.HandlerFunc { return auth.Authenticate(auth.RequireAdmin(next)) }
	rateLimiter := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	limited := func(prefix string, next http.Handler) http.Handler {
		return middleware.RateLimit(rateLimiter, prefix)(next)
	}

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{StripeClient: stripeClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	docs.SwaggerInfo.Host = ""

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	router := http.NewServeMux()

	router.Handle("GET /health", healthChecker.Handler())
	router.Handle("GET /metrics", metrics.Handler())
	router.Handle("GET /swagger/", httpSwagger.WrapHandler)

	router.HandleFunc("GET /api/products", catalogHandler.ListProducts())
	router.HandleFunc("GET /api/products/{id}", catalogHandler.GetProduct())
	router.HandleFunc("GET /api/prices", catalogHandler.GetPrice())
	router.HandleFunc("GET /api/exchange-rates", rateHandler.GetRates())
	router.Handle("POST /api/exchange-rates", admin(rateHandler.RefreshRates()))

	router.Handle("GET /api/cart", auth.Authenticate(cartHandler.GetCart()))
	router.Handle("POST /api/cart/items", auth.Authenticate(cartHandler.AddItem()))
	router.Handle("PATCH /api/cart/items", auth.Authenticate(cartHandler.UpdateQuantity()))
	router.Handle("DELETE /api/cart/items", auth.Authenticate(cartHandler.RemoveOrClear()))
	router.Handle("POST /api/cart/merge", auth.Authenticate(cartHandler.Merge()))

	router.HandleFunc("GET /api/guest-cart", cartHandler.GetCart())
	router.HandleFunc("POST /api/guest-cart/items", cartHandler.AddItem())
	router.HandleFunc("PATCH /api/guest-cart/items", cartHandler.UpdateQuantity())
	router.HandleFunc("DELETE /api/guest-cart/items", cartHandler.RemoveOrClear())

	router.Handle("POST /api/checkout", auth.OptionalAuthenticate(limited("checkout", orderHandler.Checkout())))
	router.Handle("GET /api/orders", auth.Authenticate(orderHandler.ListOrders()))
	router.Handle("GET /api/orders/{id}", auth.Authenticate(orderHandler.GetOrder()))
	router.Handle("POST /api/orders/lookup", limited("order-lookup", orderHandler.Lookup()))
	router.Handle("POST /api/admin/orders/{id}/fulfillment", admin(orderHandler.RetryFulfillment()))
	router.Handle("GET /api/admin/notifications/{id}", admin(notificationHandler.GetNotification()))

	router.HandleFunc("POST /api/webhooks/stripe", webhookHandler.Stripe())
	router.HandleFunc("POST /api/webhooks/fulfillment", webhookHandler.Fulfillment())

	router.Handle("POST /api/newsletter/subscribe", limited("newsletter", newsletterHandler.Subscribe()))
	router.Handle("POST /api/newsletter/unsubscribe", limited("newsletter", newsletterHandler.Unsubscribe()))
	router.Handle("POST /api/contact", limited("contact", newsletterHandler.Contact()))

	// Middleware chaining
	var handler http.Handler = router
	handler = telemetry.WithHTTPRoute(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "pod-storefront",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			if r.Pattern != "" {
				return r.Pattern
			}

			return r.Method + " " + r.URL.Path
		}),
	)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
