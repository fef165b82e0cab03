package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busticket/internal/config"
	router "busticket/internal/http"
	"busticket/internal/monitoring"
	"busticket/internal/queue"
	"busticket/internal/repositories"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.MySQLDSN)
	defer intconfig.CloseDB()

	rdb := intconfig.ConnectRedis(env.RedisAddr)
	if rdb != nil {
		defer rdb.Close()
	}

	fare := services.DefaultFarePolicy()
	fare.BaseFare = env.BaseFare
	fare.PremiumBuses = map[string]bool{}
	for _, code := range env.PremiumBuses {
		fare.PremiumBuses[code] = true
	}

	booking := services.NewBookingService(env.BusCodes, env.SeatsPerBus, fare)

	sinks := services.MultiSink{services.LogSink{}}
	if db != nil {
		ticketRepo := repositories.TicketRepository{DB: db}
		auditRepo := repositories.AuditRepository{DB: db}
		if err := ticketRepo.EnsureSchema(); err != nil {
			log.Fatalf("ticket schema init failed: %v", err)
		}
		if err := auditRepo.EnsureSchema(); err != nil {
			log.Fatalf("audit schema init failed: %v", err)
		}
		booking.Repo = ticketRepo
		sinks = append(sinks, auditRepo)
		if err := booking.Restore(); err != nil {
			log.Fatalf("restore from database failed: %v", err)
		}
	}
	if env.AMQPURL != "" {
		sinks = append(sinks, queue.Publisher{URL: env.AMQPURL})
	}
	booking.Audit = sinks

	monitor := monitoring.NewMonitor(booking)
	defer monitor.Stop()

	r := router.NewRouter(env, booking, rdb)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
