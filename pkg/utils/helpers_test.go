package utils

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 30.3165, 78.0322, 30.3165, 78.0322, 0, 1e-9},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.01},
		{"Dehradun to Rishikesh", 30.3165, 78.0322, 30.0869, 78.2676, 34.1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Haversine = %v, expected %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestValidLatLon(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{30.3, 78.0, true},
		{-90, -180, true},
		{90, 180, true},
		{90.1, 0, false},
		{0, 180.5, false},
		{math.NaN(), 0, false},
	}

	for _, tt := range tests {
		if got := ValidLatLon(tt.lat, tt.lon); got != tt.want {
			t.Errorf("ValidLatLon(%v, %v) = %v, expected %v", tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestClampAndRound(t *testing.T) {
	if Clamp(5, 10, 85) != 10 || Clamp(90, 10, 85) != 85 || Clamp(40, 10, 85) != 40 {
		t.Error("Clamp returned a value outside its bounds")
	}
	if RoundTo(50.41666, 1) != 50.4 || RoundTo(17.5, 0) != 18 {
		t.Error("RoundTo returned an unexpected value")
	}
}
