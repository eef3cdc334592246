package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/railtikit/rail-booking/internal/booking"
	"github.com/railtikit/rail-booking/internal/config"
	"github.com/railtikit/rail-booking/internal/database"
	"github.com/railtikit/rail-booking/internal/handler"
	"github.com/railtikit/rail-booking/internal/queue"
	"github.com/railtikit/rail-booking/internal/repository"
	"github.com/railtikit/rail-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	fares := config.LoadFareTable()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	stations := repository.NewStationRepo(db)
	trains := repository.NewTrainRepo(db)
	coaches := repository.NewCoachRepo(db)
	seats := repository.NewSeatRepo(db)
	routes := repository.NewRouteRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)

	svc := booking.NewService(db, coaches, seats, bookings, payments, routes, stations, fares)

	h := router.Handlers{
		Health:       handler.NewHealthHandler(db),
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Profile:      handler.NewProfileHandler(users),
		Station:      handler.NewStationHandler(stations, trains, coaches, routes),
		Availability: handler.NewAvailabilityHandler(trains, svc),
		Booking:      handler.NewBookingHandler(svc),
		Ticket:       handler.NewTicketHandler(svc, users),
		Payment:      handler.NewPaymentHandler(svc, payments),
	}

	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
