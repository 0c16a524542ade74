// Package template renders the server-side HTML pages with pongo2.
package template

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/shared/biztime"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

// Page template names.
const (
	PageLogin     = "login.pongo2"
	PageRegister  = "register.pongo2"
	PageDashboard = "dashboard.pongo2"
)

var registerFilters sync.Once

// Renderer executes page templates from one pongo2 template set.
type Renderer struct {
	set    *pongo2.TemplateSet
	logger logger.Interface
}

// NewRenderer builds the template set. In debug mode templates are re-read on
// every render so edits in dir show up without a restart.
func NewRenderer(dir string, debug bool, log logger.Interface) *Renderer {
	registerFilters.Do(func() {
		pongo2.RegisterFilter("display_time", filterDisplayTime)
	})

	set := pongo2.NewSet("ticketsla", newOverlayLoader(dir, log))
	set.Debug = debug
	set.Globals["app_title"] = constants.DashboardTitle

	return &Renderer{set: set, logger: log.With("component", "template.renderer")}
}

// Render executes the named template into a byte slice.
func (r *Renderer) Render(name string, data pongo2.Context) ([]byte, error) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(data, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTML writes the rendered page, or a plain 500 when rendering fails.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data pongo2.Context) {
	body, err := r.Render(name, data)
	if err != nil {
		r.logger.Errorw("failed to render template", "template", name, "error", err)
		c.String(http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		return
	}
	c.Data(status, constants.ContentTypeHTML, body)
}

// Validate parses every built-in page so broken templates fail at startup.
func (r *Renderer) Validate() error {
	for _, name := range []string{PageLogin, PageRegister, PageDashboard} {
		if _, err := r.set.FromCache(name); err != nil {
			return err
		}
	}
	return nil
}

func filterDisplayTime(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, ok := in.Interface().(time.Time)
	if !ok {
		return in, nil
	}
	if t.IsZero() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(biztime.FormatDisplay(t)), nil
}
