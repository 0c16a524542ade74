package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/ticketsla/ticketsla/internal/application/ticket/usecases"
	"github.com/ticketsla/ticketsla/internal/infrastructure/template"
	"github.com/ticketsla/ticketsla/internal/shared/biztime"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

const exportFilePrefix = "tickets"

// DashboardHandler serves the ticket dashboard and its data exports.
type DashboardHandler struct {
	getDashboardUC GetDashboardExecutor
	exportUC       ExportTicketsExecutor
	pages          PageRenderer
	logger         logger.Interface
}

func NewDashboardHandler(
	getDashboardUC GetDashboardExecutor,
	exportUC ExportTicketsExecutor,
	pages PageRenderer,
	logger logger.Interface,
) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		exportUC:       exportUC,
		pages:          pages,
		logger:         logger,
	}
}

// Show handles GET /dashboard/
func (h *DashboardHandler) Show(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{Page: utils.QueryPage(c)})
	if err != nil {
		h.logger.Errorw("failed to build dashboard", "error", err)
		c.String(http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		return
	}

	h.pages.HTML(c, http.StatusOK, template.PageDashboard, pongo2.Context{
		"dashboard": result,
		"chart":     newChartView(result.Histogram),
		"username":  c.GetString(constants.ContextKeyUsername),
	})
}

// Data handles GET /dashboard/data
func (h *DashboardHandler) Data(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{Page: utils.QueryPage(c)})
	if err != nil {
		h.logger.Errorw("failed to build dashboard data", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Export handles GET /dashboard/export.xlsx
func (h *DashboardHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	count, err := h.exportUC.Execute(c.Request.Context(), &buf)
	if err != nil {
		h.logger.Errorw("failed to export tickets", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.xlsx", exportFilePrefix, biztime.NowUTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Ticket-Count", fmt.Sprint(count))
	c.Data(http.StatusOK, constants.ContentTypeXLSX, buf.Bytes())
}
