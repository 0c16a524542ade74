package usecases

import (
	"context"
	"fmt"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	vo "github.com/ticketsla/ticketsla/internal/domain/user/valueobjects"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type RegisterCommand struct {
	Username string
	Password string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, errors.NewDuplicateUserError(constants.ErrMsgDuplicateUser)
	}

	newUser, err := user.NewUser(username, password, uc.passwordHasher)
	if err != nil {
		uc.logger.Errorw("failed to create user aggregate", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// a concurrent registration can still trip the unique index
		if errors.IsDuplicateUserError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user in database", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "username", username.String())

	return newUser, nil
}
