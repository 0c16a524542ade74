package mappers

import (
	"fmt"

	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket entities and persistence models.
type TicketMapper interface {
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToModels(entities []*ticket.Ticket) []*models.TicketModel
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}
	return &models.TicketModel{
		TicketID:            entity.TicketID(),
		Subject:             entity.Subject(),
		Assignee:            entity.Assignee(),
		Requester:           entity.Requester(),
		Organisation:        entity.Organisation(),
		Severity:            entity.Severity(),
		Closed:              entity.Closed(),
		Requested:           entity.Requested(),
		TicketDurationHours: entity.DurationHours(),
		SLAMet:              entity.SLAMet(),
	}
}

func (m *TicketMapperImpl) ToModels(entities []*ticket.Ticket) []*models.TicketModel {
	out := make([]*models.TicketModel, 0, len(entities))
	for _, e := range entities {
		if model := m.ToModel(e); model != nil {
			out = append(out, model)
		}
	}
	return out
}

func (m *TicketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := ticket.ReconstructTicket(
		model.TicketID,
		ticket.Attributes{
			Subject:      model.Subject,
			Assignee:     model.Assignee,
			Requester:    model.Requester,
			Organisation: model.Organisation,
			Severity:     model.Severity,
		},
		model.Requested,
		model.Closed,
		model.TicketDurationHours,
		model.SLAMet,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %q: %w", model.TicketID, err)
	}
	return entity, nil
}

func (m *TicketMapperImpl) ToEntities(ms []*models.TicketModel) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(ms))
	for _, model := range ms {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			out = append(out, entity)
		}
	}
	return out, nil
}
