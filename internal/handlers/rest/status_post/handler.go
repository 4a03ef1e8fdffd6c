package status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/entities"
	"tracker/internal/generated/dto"
	"tracker/internal/service/ledger"
	"tracker/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	identity Identity
}

func New(log handlerLogger, service Service, identity Identity) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		identity: identity,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var request dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	appendRequest := ledger.AppendRequest{
		OrderID:   orderID,
		NewStatus: entities.OrderStatusType(request.Status),
		ActorID:   h.identity.CurrentUserID(),
		Note:      request.Note,
	}
	if request.GeoTag != nil {
		appendRequest.GeoTag = &entities.GeoPoint{
			Latitude:  request.GeoTag.Latitude,
			Longitude: request.GeoTag.Longitude,
		}
	}

	entry, err := h.service.Append(r.Context(), appendRequest)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidOrderID),
			errors.Is(err, ledger.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ledger.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StatusUpdateResponse{
		OrderID:  entry.OrderID,
		Sequence: entry.Sequence,
		Status:   entry.NewStatus.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
