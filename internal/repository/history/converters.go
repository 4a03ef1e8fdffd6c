package history

import (
	"tracker/internal/entities"
)

func FromDomain(entry *entities.StatusHistoryEntry) *StatusHistoryDB {
	if entry == nil {
		return nil
	}

	model := &StatusHistoryDB{
		OrderID:    entry.OrderID,
		Sequence:   entry.Sequence,
		NewStatus:  entry.NewStatus.String(),
		ActorID:    entry.ActorID,
		OccurredAt: entry.OccurredAt,
		Note:       entry.Note,
	}

	if entry.OldStatus != nil {
		oldStatus := entry.OldStatus.String()
		model.OldStatus = &oldStatus
	}
	if entry.GeoTag != nil {
		latitude := entry.GeoTag.Latitude
		longitude := entry.GeoTag.Longitude
		model.Latitude = &latitude
		model.Longitude = &longitude
	}

	return model
}
