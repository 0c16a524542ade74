package mappers

import (
	"fmt"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	vo "github.com/ticketsla/ticketsla/internal/domain/user/valueobjects"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user entities and persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToEntity(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username().String(),
		PasswordHash: entity.PasswordHash(),
		CreatedAt:    entity.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid stored username for user %d: %w", model.ID, err)
	}
	return user.ReconstructUser(model.ID, username, model.PasswordHash, model.CreatedAt)
}
