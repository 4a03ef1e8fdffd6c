package tracking_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/entities"
	"tracker/internal/generated/dto"
	"tracker/internal/service/ledger"
	"tracker/internal/service/reconciler"
	"tracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	if orderID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.Track(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, reconciler.ErrClosed):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	snapshotDTO := toSnapshotDTO(snapshot)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(snapshotDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toSnapshotDTO(snapshot entities.TrackingSnapshot) dto.TrackingSnapshot {
	out := dto.TrackingSnapshot{
		Order: dto.Order{
			ID:          snapshot.Order.ID,
			Status:      snapshot.Order.Status.String(),
			CustomerID:  snapshot.Order.CustomerID,
			DriverID:    snapshot.Order.DriverID,
			Pickup:      toLocationDTO(snapshot.Order.Pickup),
			Destination: toLocationDTO(snapshot.Order.Destination),
			CreatedAt:   snapshot.Order.CreatedAt,
		},
		ETAMinutes:      snapshot.ETAMinutes,
		ProgressPercent: snapshot.ProgressPercent,
		UnreadMessages:  snapshot.UnreadMessages,
		Stale:           snapshot.Stale,
		UpdatedAt:       snapshot.UpdatedAt,
	}

	if snapshot.LatestPosition != nil {
		out.LatestPosition = &dto.Position{
			DriverID:   snapshot.LatestPosition.DriverID,
			Latitude:   snapshot.LatestPosition.Point.Latitude,
			Longitude:  snapshot.LatestPosition.Point.Longitude,
			CapturedAt: snapshot.LatestPosition.CapturedAt,
		}
	}

	return out
}

func toLocationDTO(location entities.Location) dto.Location {
	return dto.Location{
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
