package mappers

import (
	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
)

func ImportMarkerToModel(m *ticket.ImportMarker) *models.ImportMarkerModel {
	if m == nil {
		return nil
	}
	return &models.ImportMarkerModel{
		ID:            m.ID,
		Source:        m.Source,
		ContentSHA256: m.ContentSHA256,
		RowCount:      m.RowCount,
		ImportedAt:    m.ImportedAt,
	}
}

func ImportMarkerToDomain(m *models.ImportMarkerModel) *ticket.ImportMarker {
	if m == nil {
		return nil
	}
	return &ticket.ImportMarker{
		ID:            m.ID,
		Source:        m.Source,
		ContentSHA256: m.ContentSHA256,
		RowCount:      m.RowCount,
		ImportedAt:    m.ImportedAt.UTC(),
	}
}
