package template

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

func TestRenderer_Validate(t *testing.T) {
	r := NewRenderer("", false, logger.NewNopLogger())
	require.NoError(t, r.Validate())
}

func TestRenderer_LoginEscapesInput(t *testing.T) {
	r := NewRenderer("", false, logger.NewNopLogger())

	out, err := r.Render(PageLogin, pongo2.Context{
		"error":    "Invalid username or password.",
		"username": `<script>alert(1)</script>`,
	})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Invalid username or password.")
	assert.Contains(t, html, "Zendesk Export Dashboard")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

type testRow struct {
	TicketID      string
	Subject       string
	Assignee      string
	Requester     string
	Organisation  string
	Severity      string
	Requested     time.Time
	Closed        time.Time
	DurationHours float64
	SLAMet        bool
}

func TestRenderer_Dashboard(t *testing.T) {
	r := NewRenderer("", false, logger.NewNopLogger())

	requested := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out, err := r.Render(PageDashboard, pongo2.Context{
		"username": "alice",
		"dashboard": map[string]any{
			"Title":      "Zendesk Export Dashboard",
			"Columns":    []string{"Ticket ID", "SLA met"},
			"NoticeHTML": "<p><strong>maintenance</strong></p>",
			"Rows": []testRow{{
				TicketID: "T-1", Subject: "Printer", Requested: requested,
				Closed: requested.Add(10 * time.Hour), DurationHours: 10, SLAMet: true,
			}},
			"Page":      map[string]any{"Number": 1, "TotalPages": 1},
			"Summary":   map[string]any{"Total": 1, "Met": 1, "Missed": 0, "ComplianceRate": 100.0},
			"System":    map[string]any{"Version": "1.0.0", "Environment": "Testing", "LastImport": "3 hours ago"},
			"Histogram": map[string]any{"BinHours": 4.0},
		},
		"chart": map[string]any{},
	})
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "T-1")
	assert.Contains(t, html, "2025-01-01 10:00:00")
	assert.Contains(t, html, "10.00")
	assert.Contains(t, html, "<strong>maintenance</strong>")
	assert.Contains(t, html, "100.0%")
	assert.Contains(t, html, "3 hours ago")
	assert.Contains(t, html, "No data.")
}

func TestRenderer_DirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PageLogin), []byte(`custom {{ username }}`), 0o600))

	r := NewRenderer(dir, true, logger.NewNopLogger())

	out, err := r.Render(PageLogin, pongo2.Context{"username": "bob"})
	require.NoError(t, err)
	assert.Equal(t, "custom bob", string(out))

	// pages missing from the directory come from the built-in set
	out, err = r.Render(PageRegister, pongo2.Context{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Create account")
}

func TestRenderer_MissingDirectoryFallsBack(t *testing.T) {
	r := NewRenderer(filepath.Join(t.TempDir(), "nope"), false, logger.NewNopLogger())
	require.NoError(t, r.Validate())
}

func TestRenderer_HTML(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRenderer("", false, logger.NewNopLogger())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	r.HTML(c, http.StatusUnauthorized, PageLogin, pongo2.Context{"error": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	r.HTML(c, http.StatusOK, "missing.pongo2", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOverlayLoader_RejectsEscapes(t *testing.T) {
	l := newOverlayLoader("", logger.NewNopLogger())
	_, err := l.Get("../secret")
	assert.Error(t, err)
}
