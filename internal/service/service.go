package service

import (
	"errors"

	"github.com/Adityakr425/Swiftwy/internal/domain"
)

// DataRepository is re-exported from domain for convenience
type DataRepository = domain.DataRepository

var (
	ErrInvalidStart        = errors.New("invalid start location")
	ErrNoReachableFacility = errors.New("no reachable facility")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
)
