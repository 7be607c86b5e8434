// README: Booking vehicle listing handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadfit/internal/modules/inventory"
	"roadfit/internal/types"
)

const lookupTimeout = 10 * time.Second

type VehicleHandler struct {
	inventory *inventory.Service
}

func NewVehicleHandler(svc *inventory.Service) *VehicleHandler {
	return &VehicleHandler{inventory: svc}
}

// List handles GET /api/bookings/:id/vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	bookingID := c.Param("id")
	if bookingID == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()

	vehicles, err := h.inventory.Lookup(ctx, types.ID(bookingID))
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	out := make([]vehicleReq, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, fromVehicle(v))
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": out})
}

func (v vehicleReq) toVehicle() inventory.Vehicle {
	return inventory.Vehicle{
		ID:             types.ID(v.ID),
		Brand:          v.Brand,
		Model:          v.Model,
		AcrissCode:     v.AcrissCode,
		GroupType:      v.GroupType,
		Transmission:   v.TransmissionType,
		FuelType:       v.FuelType,
		PassengerCount: v.PassengersCount,
		BagCount:       v.BagsCount,
		IsNew:          v.IsNewCar,
		IsRecommended:  v.IsRecommended,
		IsMoreLuxury:   v.IsMoreLuxury,
		HasDiscount:    v.IsDiscounted,
		CostEur:        v.CostValueEur,
	}
}

func fromVehicle(v inventory.Vehicle) vehicleReq {
	return vehicleReq{
		ID:               string(v.ID),
		Brand:            v.Brand,
		Model:            v.Model,
		AcrissCode:       v.AcrissCode,
		GroupType:        v.GroupType,
		TransmissionType: v.Transmission,
		FuelType:         v.FuelType,
		PassengersCount:  v.PassengerCount,
		BagsCount:        v.BagCount,
		IsNewCar:         v.IsNew,
		IsRecommended:    v.IsRecommended,
		IsMoreLuxury:     v.IsMoreLuxury,
		IsDiscounted:     v.HasDiscount,
		CostValueEur:     v.CostEur,
	}
}
