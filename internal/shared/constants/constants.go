package constants

const (
	// Environment profiles
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeySessionID = "session_id"

	// Database table names
	TableUsers         = "users"
	TableTickets       = "tickets"
	TableSessions      = "sessions"
	TableImportMarkers = "import_markers"

	// Application routes
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteLogout    = "/logout"
	RouteDashboard = "/dashboard/"

	// Dashboard
	DashboardTitle     = "Zendesk Export Dashboard"
	DefaultPageSize    = 12
	DefaultSourceFile  = "Zendesk Export.csv"
	DefaultVersion     = "1.0.0"
	UnknownCommit      = "unknown"
	UnavailableCommit  = "Unavailable"
	DefaultSessionName = "ticketsla_session"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgInvalidCredentials  = "Invalid username or password."
	ErrMsgNotAuthenticated    = "Please log in to access this page."
	ErrMsgDuplicateUser       = "Username already exists."
)
