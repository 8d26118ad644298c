package response

import (
	"github.com/jinzhu/copier"

	"rv-portal/internal/usecase/shared"
)

type DistanceLegResponse struct {
	Destination     string  `json:"destination"`
	Address         string  `json:"address,omitempty"`
	Miles           float64 `json:"miles"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
}

type DistanceResponse struct {
	Origin string                `json:"origin"`
	Legs   []DistanceLegResponse `json:"legs"`
}

func FromDrivingDistances(origin string, legs []shared.DrivingDistance) DistanceResponse {
	res := DistanceResponse{Origin: origin, Legs: make([]DistanceLegResponse, 0, len(legs))}
	_ = copier.Copy(&res.Legs, &legs)
	return res
}
