package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sushinaruto/backend/internal/contact"
	"github.com/sushinaruto/backend/internal/dashboard"
	"github.com/sushinaruto/backend/internal/logger"
	"github.com/sushinaruto/backend/internal/menu"
	"github.com/sushinaruto/backend/internal/notify"
	"github.com/sushinaruto/backend/internal/order"
	"github.com/sushinaruto/backend/internal/reservation"
	"github.com/sushinaruto/backend/internal/router"
	storage "github.com/sushinaruto/backend/internal/storage/postgres"
	"github.com/sushinaruto/backend/internal/user"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := storage.NewPostgresStorage(cfg.DatabaseConnection)
	if err != nil {
		log.Fatalf("Failed to initialize Postgres storage: %v", err)
	}
	if err := store.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close storage: %v", err)
		}
	}()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	brevo := &notify.BrevoClient{
		Client:      httpClient,
		APIKey:      cfg.BrevoAPIKey,
		SenderName:  cfg.SenderName,
		SenderEmail: cfg.SenderEmail,
	}
	dispatcher := notify.NewDispatcher(brevo, logger.Log)

	userSvc := user.NewService(store, []byte(cfg.JWTSecret), cfg.JWTTTL)
	userHandler := user.NewHandler(userSvc)

	menuSvc := menu.NewService(store)
	menuHandler := menu.NewHandler(menuSvc)

	orderSvc := order.NewService(store, store, dispatcher, cfg.OpsEmail)
	orderHandler := order.NewHandler(orderSvc)

	reservationSvc := reservation.NewService(store, dispatcher)
	reservationHandler := reservation.NewHandler(reservationSvc)

	contactSvc := contact.NewService(store, dispatcher, cfg.OpsEmail)
	contactHandler := contact.NewHandler(contactSvc)

	dashboardSvc := dashboard.NewService(store, store, store)
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	r := router.NewRouter(
		userHandler,
		orderHandler,
		menuHandler,
		reservationHandler,
		contactHandler,
		dashboardHandler,
		[]byte(cfg.JWTSecret),
		store,
	)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
	return nil
}
