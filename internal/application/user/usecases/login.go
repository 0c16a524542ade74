package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	vo "github.com/ticketsla/ticketsla/internal/domain/user/valueobjects"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User    *user.User
	Session *user.Session
	// Token is the signed cookie value referencing Session.
	Token string
}

type LoginUseCase struct {
	userRepo       user.Repository
	sessionRepo    user.SessionRepository
	passwordHasher PasswordHasher
	tokenService   SessionTokenService
	sessionTTL     time.Duration
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokenService SessionTokenService,
	sessionTTL time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		passwordHasher: hasher,
		tokenService:   tokenService,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.findUser(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}

	if existingUser == nil {
		uc.passwordHasher.CompareDummy(cmd.Password)
		uc.logger.Infow("login rejected", "reason", "unknown user", "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError(constants.ErrMsgInvalidCredentials)
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Infow("login rejected", "reason", "password mismatch", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError(constants.ErrMsgInvalidCredentials)
	}

	if purged, err := uc.sessionRepo.DeleteExpired(ctx); err != nil {
		uc.logger.Warnw("failed to purge expired sessions", "error", err)
	} else if purged > 0 {
		uc.logger.Debugw("expired sessions purged", "count", purged)
	}

	session, err := user.NewSession(existingUser.ID(), existingUser.Username().String(), cmd.IPAddress, cmd.UserAgent, uc.sessionTTL)
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := uc.tokenService.Sign(session.ID, session.Username, session.ExpiresAt)
	if err != nil {
		uc.logger.Errorw("failed to sign session token", "error", err, "user_id", existingUser.ID())
		if delErr := uc.sessionRepo.Delete(ctx, session.ID); delErr != nil {
			uc.logger.Warnw("failed to discard unsigned session", "error", delErr)
		}
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID(), "ip", cmd.IPAddress)

	return &LoginResult{
		User:    existingUser,
		Session: session,
		Token:   token,
	}, nil
}

// findUser returns nil for names that cannot exist, so they take the same
// path as unknown users.
func (uc *LoginUseCase) findUser(ctx context.Context, raw string) (*user.User, error) {
	username, err := vo.NewUsername(raw)
	if err != nil {
		return nil, nil
	}

	existingUser, err := uc.userRepo.GetByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return existingUser, nil
}
