package handlers

import (
	"context"
	"io"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	ticketdto "github.com/ticketsla/ticketsla/internal/application/ticket/dto"
	ticketusecases "github.com/ticketsla/ticketsla/internal/application/ticket/usecases"
	"github.com/ticketsla/ticketsla/internal/application/user/usecases"
	"github.com/ticketsla/ticketsla/internal/domain/user"
)

// mockPages records the last rendered page instead of executing templates.
type mockPages struct {
	name   string
	status int
	data   pongo2.Context
}

func (m *mockPages) HTML(c *gin.Context, status int, name string, data pongo2.Context) {
	m.name = name
	m.status = status
	m.data = data
	c.String(status, name)
}

type mockRegisterUC struct {
	cmd    usecases.RegisterCommand
	called bool
	result *user.User
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterCommand) (*user.User, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	cmd    usecases.LoginCommand
	called bool
	result *usecases.LoginResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error) {
	m.called = true
	m.cmd = cmd
	return m.result, m.err
}

type mockLogoutUC struct {
	cmd usecases.LogoutCommand
	err error
}

func (m *mockLogoutUC) Execute(_ context.Context, cmd usecases.LogoutCommand) error {
	m.cmd = cmd
	return m.err
}

type mockGetDashboardUC struct {
	query  ticketusecases.GetDashboardQuery
	result *ticketdto.DashboardDTO
	err    error
}

func (m *mockGetDashboardUC) Execute(_ context.Context, query ticketusecases.GetDashboardQuery) (*ticketdto.DashboardDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockExportUC struct {
	body  string
	count int
	err   error
}

func (m *mockExportUC) Execute(_ context.Context, w io.Writer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	_, err := io.WriteString(w, m.body)
	return m.count, err
}

// mockAttempts counts recorded outcomes per result.
type mockAttempts struct {
	logins        map[string]int
	registrations map[string]int
}

func newMockAttempts() *mockAttempts {
	return &mockAttempts{logins: map[string]int{}, registrations: map[string]int{}}
}

func (m *mockAttempts) LoginAttempt(result string)        { m.logins[result]++ }
func (m *mockAttempts) RegistrationAttempt(result string) { m.registrations[result]++ }
