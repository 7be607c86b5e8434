// README: Trip-evaluation endpoint handler.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadfit/internal/modules/recommend"
	"roadfit/internal/modules/route"
	"roadfit/internal/modules/trip"
	"roadfit/internal/types"
)

const evaluateTimeout = 15 * time.Second

type RecommendHandler struct {
	recommend *recommend.Service
}

func NewRecommendHandler(svc *recommend.Service) *RecommendHandler {
	return &RecommendHandler{recommend: svc}
}

type pointReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type vehicleReq struct {
	ID               string  `json:"id"`
	Brand            string  `json:"brand"`
	Model            string  `json:"model"`
	AcrissCode       string  `json:"acriss_code"`
	GroupType        string  `json:"group_type"`
	TransmissionType string  `json:"transmission_type"`
	FuelType         string  `json:"fuel_type"`
	PassengersCount  int     `json:"passengers_count"`
	BagsCount        int     `json:"bags_count"`
	IsNewCar         bool    `json:"is_new_car"`
	IsRecommended    bool    `json:"is_recommended"`
	IsMoreLuxury     bool    `json:"is_more_luxury"`
	IsDiscounted     bool    `json:"is_exciting_discount"`
	CostValueEur     float64 `json:"vehicle_cost_value_eur"`
}

type recommendReq struct {
	PeopleCount       int     `json:"people_count"`
	LuggageBigCount   int     `json:"luggage_big_count"`
	LuggageSmallCount int     `json:"luggage_small_count"`
	TripLengthKm      float64 `json:"trip_length_km"`
	TripLengthHours   int     `json:"trip_length_hours"`
	Preference        string  `json:"preference"`
	Transmission      string  `json:"transmission_preference"`
	DrivingSkills     string  `json:"driving_skills"`
	ParkingDifficulty int     `json:"parking_difficulty"`

	ConditionID  int     `json:"condition_id"`
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedMps float64 `json:"wind_speed_mps"`
	RainVolume1h float64 `json:"rain_volume_1h"`
	SnowVolume1h float64 `json:"snow_volume_1h"`
	VisibilityM  int     `json:"visibility_m"`

	RoadCoordinates route.Trace `json:"road_coordinates"`
	Origin          *pointReq   `json:"origin"`
	Destination     *pointReq   `json:"destination"`

	BookingID string       `json:"booking_id"`
	Vehicles  []vehicleReq `json:"vehicles"`
}

type rankedVehicleResp struct {
	ID   string `json:"id"`
	Rank int    `json:"rank"`
}

type recommendResp struct {
	RiskScore           float64             `json:"risk_score"`
	ConditionMultiplier float64             `json:"condition_multiplier"`
	HighwayPercent      float64             `json:"highway_percent"`
	MaxSlope            float64             `json:"max_slope"`
	TotalAscent         float64             `json:"total_ascent"`
	TotalDescent        float64             `json:"total_descent"`
	AverageSlope        float64             `json:"average_slope"`
	Vehicles            []rankedVehicleResp `json:"vehicles"`
	AdvisorNote         string              `json:"advisor_note,omitempty"`
}

// Evaluate handles POST /api/recommendation.
func (h *RecommendHandler) Evaluate(c *gin.Context) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, route.ErrMalformedTracePoint) {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if req.ParkingDifficulty < 0 || req.ParkingDifficulty > 10 {
		writeError(c, http.StatusBadRequest, "parking_difficulty must be in 0..10")
		return
	}
	if req.PeopleCount < 0 || req.LuggageBigCount < 0 || req.LuggageSmallCount < 0 {
		writeError(c, http.StatusBadRequest, "counts must be non-negative")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), evaluateTimeout)
	defer cancel()

	resp, err := h.recommend.Evaluate(ctx, toRequest(req))
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, toResponse(resp))
}

func toRequest(req recommendReq) recommend.Request {
	out := recommend.Request{
		Trip: trip.Context{
			OccupantCount:     req.PeopleCount,
			LargeBagCount:     req.LuggageBigCount,
			SmallBagCount:     req.LuggageSmallCount,
			TripLengthKm:      req.TripLengthKm,
			TripLengthHours:   req.TripLengthHours,
			Preference:        trip.Preference(req.Preference),
			Transmission:      trip.TransmissionPreference(req.Transmission),
			DriverSkill:       trip.DriverSkill(req.DrivingSkills),
			ParkingDifficulty: req.ParkingDifficulty,
		},
		Weather: trip.Weather{
			ConditionCode: req.ConditionID,
			TemperatureC:  req.TemperatureC,
			WindSpeedMps:  req.WindSpeedMps,
			RainMmPerH:    req.RainVolume1h,
			SnowMmPerH:    req.SnowVolume1h,
			VisibilityM:   req.VisibilityM,
		},
		Trace:     req.RoadCoordinates,
		BookingID: types.ID(req.BookingID),
	}
	if req.Origin != nil {
		out.Origin = &types.Point{Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	}
	if req.Destination != nil {
		out.Destination = &types.Point{Lat: req.Destination.Lat, Lng: req.Destination.Lng}
	}
	for _, v := range req.Vehicles {
		out.Vehicles = append(out.Vehicles, v.toVehicle())
	}
	return out
}

func toResponse(resp *recommend.Response) recommendResp {
	out := recommendResp{
		RiskScore:           resp.RiskScore,
		ConditionMultiplier: resp.ConditionMultiplier,
		HighwayPercent:      resp.HighwayPercent,
		MaxSlope:            resp.MaxSlope,
		TotalAscent:         resp.TotalAscentM,
		TotalDescent:        resp.TotalDescentM,
		AverageSlope:        resp.AverageSlope,
		Vehicles:            make([]rankedVehicleResp, 0, len(resp.Vehicles)),
		AdvisorNote:         resp.AdvisorNote,
	}
	for _, v := range resp.Vehicles {
		out.Vehicles = append(out.Vehicles, rankedVehicleResp{ID: string(v.ID), Rank: v.Rank})
	}
	return out
}
