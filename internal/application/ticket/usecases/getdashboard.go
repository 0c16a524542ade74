package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xeonx/timeago"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ticketsla/ticketsla/internal/application/ticket/dto"
	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/shared/biztime"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
	"github.com/ticketsla/ticketsla/internal/shared/version"
)

const neverImported = "Never"

// DashboardOptions are the presentation settings of the dashboard.
type DashboardOptions struct {
	Title    string
	PageSize int
	BinHours float64
	// Notice is operator Markdown shown above the table; empty hides it.
	Notice string
}

// AppInfo feeds the System Info panel.
type AppInfo struct {
	Version     string
	DeployDate  string
	Environment string
	Commit      string
}

type GetDashboardQuery struct {
	Page int
}

type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	markerRepo ticket.ImportMarkerRepository
	notice     NoticeRenderer
	opts       DashboardOptions
	info       AppInfo
	now        func() time.Time
	logger     logger.Interface
}

func NewGetDashboardUseCase(
	ticketRepo ticket.Repository,
	markerRepo ticket.ImportMarkerRepository,
	notice NoticeRenderer,
	opts DashboardOptions,
	info AppInfo,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		markerRepo: markerRepo,
		notice:     notice,
		opts:       opts,
		info:       info,
		now:        biztime.NowUTC,
		logger:     logger,
	}
}

// Execute reads the whole ticket store and builds one page of the table plus
// the histogram and summary over every ticket.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error) {
	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	marker, err := uc.markerRepo.GetLatest(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load import marker", "error", err)
		return nil, fmt.Errorf("failed to load import marker: %w", err)
	}

	page := utils.Paginate(len(tickets), query.Page, uc.opts.PageSize)

	result := &dto.DashboardDTO{
		Title:     uc.opts.Title,
		Columns:   ticket.DisplayColumns,
		Rows:      dto.ToTicketRowDTOs(tickets[page.Start:page.End]),
		Page:      dto.ToPageDTO(page),
		Summary:   summarize(tickets),
		Histogram: buildHistogram(tickets, uc.opts.BinHours),
		System:    uc.systemInfo(marker),
	}

	if strings.TrimSpace(uc.opts.Notice) != "" && uc.notice != nil {
		html, err := uc.notice.ToHTMLSanitized(uc.opts.Notice)
		if err != nil {
			uc.logger.Warnw("failed to render dashboard notice", "error", err)
		} else {
			result.NoticeHTML = html
		}
	}

	return result, nil
}

func (uc *GetDashboardUseCase) systemInfo(marker *ticket.ImportMarker) dto.SystemInfoDTO {
	info := dto.SystemInfoDTO{
		Version:     version.Display(uc.info.Version),
		DeployDate:  uc.info.DeployDate,
		Environment: cases.Title(language.English).String(uc.info.Environment),
		Commit:      uc.info.Commit,
		LastImport:  neverImported,
	}
	if marker != nil {
		at := marker.ImportedAt
		info.LastImportAt = &at
		info.LastImport = timeago.English.FormatReference(at, uc.now())
	}
	return info
}
