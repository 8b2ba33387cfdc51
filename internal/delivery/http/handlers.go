package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Adityakr425/Swiftwy/internal/domain"
	"github.com/Adityakr425/Swiftwy/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	trafficSvc *service.TrafficService
	routeSvc   *service.RouteService
	archiveSvc *service.ArchiveService
}

// NewHandler creates a new handler
func NewHandler(trafficSvc *service.TrafficService, routeSvc *service.RouteService, archiveSvc *service.ArchiveService) *Handler {
	return &Handler{
		trafficSvc: trafficSvc,
		routeSvc:   routeSvc,
		archiveSvc: archiveSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	archive := "ok"
	if err := h.archiveSvc.Health(c.Context()); err != nil {
		log.WithError(err).Warn("Archive health check failed")
		archive = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "swiftwy-backend",
		"version": "1.0.0",
		"archive": archive,
	})
}

// GetTraffic returns current segment state, hotspots and summary
func (h *Handler) GetTraffic(c *fiber.Ctx) error {
	feed, err := h.trafficSvc.GetTrafficFeed(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch traffic data")
	}

	return c.JSON(domain.TrafficResponse{
		Data:    feed,
		Success: true,
	})
}

// GetTrafficGeoJSON returns the current feed as a GeoJSON FeatureCollection
func (h *Handler) GetTrafficGeoJSON(c *fiber.Ctx) error {
	fc, err := h.trafficSvc.FeedGeoJSON(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render traffic data")
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	body, err := fc.MarshalJSON()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render traffic data")
	}
	return c.Send(body)
}

// GetTrafficHistory returns archived snapshots within the last N hours
func (h *Handler) GetTrafficHistory(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > 720 { // max 30 days
		hours = 24
	}

	history, err := h.archiveSvc.History(c.Context(), hours)
	if err != nil {
		log.WithError(err).Error("Failed to fetch traffic history")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch traffic history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    history,
		"count":   len(history),
	})
}

// PlanRoute returns main and best routes; unknown locations yield empty routes
func (h *Handler) PlanRoute(c *fiber.Ctx) error {
	var req domain.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.routeSvc.PlanRoute(c.Context(), req),
	})
}

// RouteToFacility routes to the facility with the lowest congestion-aware ETA
func (h *Handler) RouteToFacility(c *fiber.Ctx) error {
	var req domain.FacilityRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := h.routeSvc.RouteToFacility(c.Context(), req)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    res,
	})
}

// GetFacilities returns the configured facilities
func (h *Handler) GetFacilities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.routeSvc.ListFacilities(c.Context()),
	})
}

// GetLocations returns the configured locations
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.routeSvc.ListLocations(c.Context()),
	})
}

// GetNearestLocation snaps ?lat=&lon= to the closest location
func (h *Handler) GetNearestLocation(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		return fiber.NewError(fiber.StatusBadRequest, "lat and lon must be numbers")
	}

	nearest, err := h.routeSvc.NearestLocation(c.Context(), lat, lon)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    nearest,
	})
}

// LegacyTraffic serves the flat {roads, hotspots} shape older clients read
func (h *Handler) LegacyTraffic(c *fiber.Ctx) error {
	feed, err := h.trafficSvc.GetTrafficFeed(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch traffic data")
	}

	return c.JSON(fiber.Map{
		"roads":    feed.Segments,
		"hotspots": feed.Hotspots,
	})
}

// LegacyRoute serves the unwrapped route result
func (h *Handler) LegacyRoute(c *fiber.Ctx) error {
	var req domain.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	return c.JSON(h.routeSvc.PlanRoute(c.Context(), req))
}

// LegacyHospitals serves {hospitals}
func (h *Handler) LegacyHospitals(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"hospitals": h.routeSvc.ListFacilities(c.Context()),
	})
}

func toFiberError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidStart):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCoordinate):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoReachableFacility):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
}

// ErrorHandler renders every error as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
