// README: REST client for the upstream booking inventory API.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"roadfit/internal/types"
)

// Client fetches the vehicle list attached to a booking from the rental
// provider's API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Wire types follow the upstream response:
// {"deals": [{"vehicle": {...}}, ...]}
type dealsResponse struct {
	Deals []struct {
		Vehicle *vehiclePayload `json:"vehicle"`
	} `json:"deals"`
}

type vehiclePayload struct {
	ID               string `json:"id"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	AcrissCode       string `json:"acrissCode"`
	GroupType        string `json:"groupType"`
	TransmissionType string `json:"transmissionType"`
	FuelType         string `json:"fuelType"`
	PassengersCount  int    `json:"passengersCount"`
	BagsCount        int    `json:"bagsCount"`
	IsNewCar         bool   `json:"isNewCar"`
	IsRecommended    bool   `json:"isRecommended"`
	IsMoreLuxury     bool   `json:"isMoreLuxury"`
	IsDiscounted     bool   `json:"isExcitingDiscount"`
	VehicleCost      *struct {
		Currency string  `json:"currency"`
		Value    float64 `json:"value"`
	} `json:"vehicleCost"`
}

// FetchVehicles returns the vehicles offered for a booking.
// A 404 maps to ErrBookingNotFound and an empty deals array to ErrNoVehicles;
// anything else unexpected is wrapped as a transport error.
func (c *Client) FetchVehicles(ctx context.Context, bookingID types.ID) ([]Vehicle, error) {
	endpoint := fmt.Sprintf("%s/booking/%s/vehicles", c.baseURL, url.PathEscape(string(bookingID)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build inventory request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrBookingNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var body dealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if len(body.Deals) == 0 {
		return nil, ErrNoVehicles
	}

	vehicles := make([]Vehicle, 0, len(body.Deals))
	for _, deal := range body.Deals {
		if deal.Vehicle == nil {
			// Deal entries without a vehicle node do appear upstream; skip them.
			continue
		}
		vehicles = append(vehicles, deal.Vehicle.toVehicle())
	}
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}
	return vehicles, nil
}

func (p *vehiclePayload) toVehicle() Vehicle {
	v := Vehicle{
		ID:             types.ID(p.ID),
		Brand:          p.Brand,
		Model:          p.Model,
		AcrissCode:     p.AcrissCode,
		GroupType:      p.GroupType,
		Transmission:   p.TransmissionType,
		FuelType:       p.FuelType,
		PassengerCount: p.PassengersCount,
		BagCount:       p.BagsCount,
		IsNew:          p.IsNewCar,
		IsRecommended:  p.IsRecommended,
		IsMoreLuxury:   p.IsMoreLuxury,
		HasDiscount:    p.IsDiscounted,
	}
	if p.VehicleCost != nil {
		v.CostEur = p.VehicleCost.Value
	}
	return v
}
