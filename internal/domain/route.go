package domain

// Facility is a point of interest (a hospital) situated at a Location
type Facility struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	City   Location   `json:"city"`
	Coords Coordinate `json:"coords"`
}

// RouteRequest is the input for a start/end route query
type RouteRequest struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// FacilityRouteRequest is the input for a nearest-facility query
type FacilityRouteRequest struct {
	Start Location `json:"start"`
}

// RouteStatusOK is reported for every PlanRoute result, including unreachable ones
const RouteStatusOK = "ok"

// RouteResult holds the distance-optimal ("main") and congestion-aware ("best") routes.
// Empty routes with zero ETA mean unknown or unreachable endpoints.
type RouteResult struct {
	Status         string     `json:"status"`
	MainRoute      []Location `json:"main_route"`
	MainETA        int        `json:"main_eta"`
	MainDistanceKm float64    `json:"main_distance_km"`
	BestRoute      []Location `json:"best_route"`
	BestETA        int        `json:"best_eta"`
	BestDistanceKm float64    `json:"best_distance_km"`
}

// FacilityRoute is a RouteResult towards the chosen facility
type FacilityRoute struct {
	RouteResult
	Facility Facility `json:"facility"`
}

// LocationInfo describes a configured location and where it is
type LocationInfo struct {
	Name   Location   `json:"name"`
	Coords Coordinate `json:"coords"`
}

// NearestLocation is the result of snapping a coordinate onto the network
type NearestLocation struct {
	Location   LocationInfo `json:"location"`
	DistanceKm float64      `json:"distance_km"`
}
