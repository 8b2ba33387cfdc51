package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Adityakr425/Swiftwy/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, trafficSvc *service.TrafficService, routeSvc *service.RouteService, archiveSvc *service.ArchiveService) {
	handler := NewHandler(trafficSvc, routeSvc, archiveSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Live traffic
		api.Get("/traffic", handler.GetTraffic)
		api.Get("/traffic/geojson", handler.GetTrafficGeoJSON)
		api.Get("/traffic/history", handler.GetTrafficHistory)

		// Routing
		api.Post("/route", handler.PlanRoute)
		api.Post("/route/facility", handler.RouteToFacility)

		// Reference data
		api.Get("/facilities", handler.GetFacilities)
		api.Get("/locations", handler.GetLocations)
		api.Get("/locations/nearest", handler.GetNearestLocation)
	}

	// Legacy paths kept for the map UI
	app.Get("/traffic", handler.LegacyTraffic)
	app.Post("/route", handler.LegacyRoute)
	app.Get("/hospitals", handler.LegacyHospitals)
}
