package usecases

import (
	"context"
	"fmt"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return errors.NewNotAuthenticatedError(constants.ErrMsgNotAuthenticated)
	}

	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("user logged out successfully")

	return nil
}
