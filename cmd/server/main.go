package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/club-passport/internal/config"
	"github.com/iliyamo/club-passport/internal/database"
	"github.com/iliyamo/club-passport/internal/handler"
	"github.com/iliyamo/club-passport/internal/queue"
	"github.com/iliyamo/club-passport/internal/repository"
	"github.com/iliyamo/club-passport/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("db schema: %v", err)
	}
	cancel()

	// nil client disables the event-list cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, event cache disabled")
	}

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	ledger := repository.NewAttendanceRepo(db)

	authH := handler.NewAuthHandler(cfg, users)
	eventH := handler.NewEventHandler(events, rdb, time.Duration(cfg.EventCacheTTLSec)*time.Second)
	attendanceH := handler.NewAttendanceHandler(ledger)
	userH := handler.NewUserHandler(users)

	// Consumer keeps its own reconnect loop; it never stops the server.
	go func() {
		if err := queue.StartAttendanceConsumer(); err != nil {
			log.Printf("attendance consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.Register(e, cfg.JWTSecret, authH, eventH, attendanceH, userH)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
