package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/railtikit/rail-booking/internal/config"
	"github.com/railtikit/rail-booking/internal/handler"
	"github.com/railtikit/rail-booking/internal/middleware"
)

// Handlers collects every handler the API mounts. All fields must be
// non-nil when passed to Register.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Station      *handler.StationHandler
	Availability *handler.AvailabilityHandler
	Booking      *handler.BookingHandler
	Ticket       *handler.TicketHandler
	Payment      *handler.PaymentHandler
}

// Register mounts all routes. Reference lookups (stations, trains,
// routes, availability) are public and response-cached; booking,
// tickets, payments and profile require a valid access token. The rate
// limiter fronts everything.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", h.Health.Healthz)

	// auth
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// public reference data, cached
	pub := e.Group("/v1")
	pub.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	pub.GET("/stations", h.Station.ListStations)
	pub.GET("/train-info", h.Station.TrainInfo)
	pub.GET("/trains/:id/routes", h.Station.TrainRoutes)
	pub.GET("/trains/:id/coach-availability", h.Availability.CoachAvailability)
	e.POST("/v1/search-trains", h.Station.SearchTrains)

	// authenticated
	priv := e.Group("/v1")
	priv.Use(middleware.JWTAuth(cfg.JWTSecret))
	priv.Use(middleware.RequireRole("user", "admin"))
	priv.POST("/auth/logout", h.Auth.Logout)
	priv.GET("/me", h.Profile.Me)
	priv.PUT("/me", h.Profile.UpdateMe)
	priv.DELETE("/me", h.Profile.DeleteMe)
	priv.POST("/bookings", h.Booking.Book)
	priv.GET("/tickets/:id", h.Ticket.GetTicket)
	priv.GET("/tickets/:id/pdf", h.Ticket.TicketPDF)
	priv.GET("/my-tickets", h.Ticket.MyTickets)
	priv.POST("/payments", h.Payment.Pay)
}
