package handlers

import (
	"context"
	"io"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	ticketdto "github.com/ticketsla/ticketsla/internal/application/ticket/dto"
	ticketusecases "github.com/ticketsla/ticketsla/internal/application/ticket/usecases"
	userusecases "github.com/ticketsla/ticketsla/internal/application/user/usecases"
	"github.com/ticketsla/ticketsla/internal/domain/user"
)

// PageRenderer writes a named HTML page.
type PageRenderer interface {
	HTML(c *gin.Context, status int, name string, data pongo2.Context)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd userusecases.RegisterCommand) (*user.User, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd userusecases.LoginCommand) (*userusecases.LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd userusecases.LogoutCommand) error
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query ticketusecases.GetDashboardQuery) (*ticketdto.DashboardDTO, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, w io.Writer) (int, error)
}

// AttemptRecorder counts authentication outcomes.
type AttemptRecorder interface {
	LoginAttempt(result string)
	RegistrationAttempt(result string)
}
