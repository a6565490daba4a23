package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Availability *api.AvailabilityHandler
	Pricing      *api.PricingHandler
	Reservation  *api.ReservationHandler
	Room         *api.RoomHandler
	Offer        *api.OfferHandler
	Resolver     *api.ResolverHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.CustomerContext())
	{
		hotels := apiGroup.Group("/hotels/:id")
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.HotelAvailability},
			{Method: http.MethodPost, Path: "/rooms", Handler: h.Room.Create},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.List},
			{Method: http.MethodPost, Path: "/offers", Handler: h.Offer.Create},
			{Method: http.MethodGet, Path: "/offers/active", Handler: h.Offer.ListActive},
		})

		rooms := apiGroup.Group("/rooms/:id")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.RoomAvailability},
			{Method: http.MethodGet, Path: "/occupancy", Handler: h.Availability.Occupancy},
			{Method: http.MethodPost, Path: "/quote", Handler: h.Pricing.Quote},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Reserve},
			{Method: http.MethodPut, Path: "/pricing", Handler: h.Room.UpdatePricing},
			{Method: http.MethodPut, Path: "/housekeeping", Handler: h.Room.SetHousekeeping},
			{Method: http.MethodPost, Path: "/check-in", Handler: h.Room.CheckIn},
			{Method: http.MethodPost, Path: "/check-out", Handler: h.Room.CheckOut},
			{Method: http.MethodPost, Path: "/out-of-order", Handler: h.Room.MarkOutOfOrder},
			{Method: http.MethodPost, Path: "/restore", Handler: h.Room.RestoreService},
			{Method: http.MethodPost, Path: "/archive", Handler: h.Room.Archive},
			{Method: http.MethodPost, Path: "/maintenance", Handler: h.Room.ScheduleMaintenance},
			{Method: http.MethodPost, Path: "/maintenance/start", Handler: h.Room.StartMaintenance},
			{Method: http.MethodPost, Path: "/maintenance/end", Handler: h.Room.EndMaintenance},
			{Method: http.MethodDelete, Path: "/maintenance/:windowId", Handler: h.Room.CancelMaintenance},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPost, Path: "/stays/resolve", Handler: h.Resolver.Resolve},
		})

		offers := apiGroup.Group("/offers/:id")
		addRoutes(offers, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Offer.Get},
			{Method: http.MethodGet, Path: "/analytics", Handler: h.Offer.Analytics},
			{Method: http.MethodPost, Path: "/approve", Handler: h.Offer.Approve},
			{Method: http.MethodPost, Path: "/pause", Handler: h.Offer.Pause},
			{Method: http.MethodPost, Path: "/resume", Handler: h.Offer.Resume},
			{Method: http.MethodPost, Path: "/cancel", Handler: h.Offer.Cancel},
			{Method: http.MethodPost, Path: "/view", Handler: h.Offer.RecordView},
			{Method: http.MethodPost, Path: "/click", Handler: h.Offer.RecordClick},
			{Method: http.MethodPost, Path: "/applicability", Handler: h.Offer.Applicability},
			{Method: http.MethodPost, Path: "/redemptions", Handler: h.Offer.Redeem, Mw: []gin.HandlerFunc{middleware.RequireCustomer()}},
			{Method: http.MethodGet, Path: "/redemptions", Handler: h.Offer.ListRedemptions},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
