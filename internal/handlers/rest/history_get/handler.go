package history_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"tracker/internal/entities"
	"tracker/internal/generated/dto"
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

	history := h.service.History(orderID)
	if len(history) == 0 {
		// заказ без единой записи в журнале не трекается
		w.WriteHeader(http.StatusNotFound)
		return
	}

	response := dto.StatusHistoryResponse{
		OrderID: orderID,
		Entries: make([]dto.StatusHistoryEntry, 0, len(history)),
	}
	for _, entry := range history {
		response.Entries = append(response.Entries, toEntryDTO(entry))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toEntryDTO(entry entities.StatusHistoryEntry) dto.StatusHistoryEntry {
	out := dto.StatusHistoryEntry{
		Sequence:   entry.Sequence,
		NewStatus:  entry.NewStatus.String(),
		ActorID:    entry.ActorID,
		OccurredAt: entry.OccurredAt,
		Note:       entry.Note,
	}

	if entry.OldStatus != nil {
		oldStatus := entry.OldStatus.String()
		out.OldStatus = &oldStatus
	}
	if entry.GeoTag != nil {
		out.GeoTag = &dto.GeoPoint{
			Latitude:  entry.GeoTag.Latitude,
			Longitude: entry.GeoTag.Longitude,
		}
	}

	return out
}
