package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"gigglesgo/calendarsync"
	"gigglesgo/catalog"
	"gigglesgo/feedback"
	"gigglesgo/kv"
	"gigglesgo/logger"
	"gigglesgo/maps"
	"gigglesgo/middleware"
	"gigglesgo/notify"
	"gigglesgo/pass"
	"gigglesgo/profile"
	"gigglesgo/ratelim"
	"gigglesgo/routes"
	"gigglesgo/screens"
	"gigglesgo/settings"
	"gigglesgo/share"
	"gigglesgo/state"
	"gigglesgo/wizard"
)

func healthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("200"))
}

func setupRouter(app *state.App, rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", healthCheck)

	routes.AddStaticRoutes(router)
	routes.AddEventRoutes(router, catalog.NewHandler(app.Catalog), rl)
	routes.AddScreenRoutes(router, screens.NewHandler(app.Router, app.Banners))
	routes.AddSettingsRoutes(router, settings.NewHandler(app.Settings))
	routes.AddProfileRoutes(router, profile.NewHandler(app.Profile))
	routes.AddWizardRoutes(router, wizard.NewHandler(app.Wizard), rl)
	routes.AddCalendarRoutes(router, calendarsync.NewHandler(app.History, app.Banners))
	routes.AddShareRoutes(router, share.NewHandler(app.Share))
	routes.AddMapRoutes(router, maps.NewHandler(maps.NoLocation{}))
	routes.AddFeedbackRoutes(router, feedback.NewHandler(app.Feedback), rl)
	routes.AddPassRoutes(router, pass.NewHandler(app.Catalog, app.Profile, app.Signer), rl)

	return router
}

func main() {
	log := logger.New("gigglesgo")

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// durable preferences land in redis when configured, otherwise in memory
	var store kv.Store
	if url := os.Getenv("REDIS_URL"); url != "" {
		redisStore, err := kv.NewRedis(url)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		log.Info("REDIS_URL not set; preferences will not survive restarts")
		store = kv.NewMemory()
	}

	app := state.NewApp(state.Options{
		BannerCapacity: 3,
		KV:             store,
		PassSecret:     os.Getenv("PASS_SECRET"),
	})

	hub := notify.NewHub()
	go hub.Run()
	app.Banners.AttachHub(hub)

	rl := ratelim.NewRateLimiter()
	router := setupRouter(app, rl)
	routes.AddNotificationRoutes(router, notify.NewHandler(app.Banners, hub, log))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	handler := middleware.RequestLogger(log, middleware.SecurityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Info("shutting down banner hub")
		hub.Stop()
		app.Close()
	})

	go func() {
		log.WithField("addr", port).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("graceful shutdown failed")
	}
	log.Info("server stopped")
}
