package usecases

import (
	"context"
	"fmt"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type AuthenticateCommand struct {
	Token string
}

// AuthenticateUseCase resolves a session cookie to a live session.
type AuthenticateUseCase struct {
	sessionRepo  user.SessionRepository
	tokenService SessionTokenService
	logger       logger.Interface
}

func NewAuthenticateUseCase(sessionRepo user.SessionRepository, tokenService SessionTokenService, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute fails with a not-authenticated error for a missing, forged or
// expired cookie and for a session that no longer exists.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*user.Session, error) {
	if cmd.Token == "" {
		return nil, errors.NewNotAuthenticatedError(constants.ErrMsgNotAuthenticated)
	}

	sessionID, err := uc.tokenService.SessionID(cmd.Token)
	if err != nil {
		uc.logger.Debugw("session token rejected", "error", err)
		return nil, errors.NewNotAuthenticatedError("session is invalid")
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotAuthenticatedError("session not found")
		}
		uc.logger.Errorw("failed to load session", "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.IsExpired() {
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
			uc.logger.Warnw("failed to delete expired session", "error", err)
		}
		return nil, errors.NewNotAuthenticatedError("session expired")
	}

	return session, nil
}
