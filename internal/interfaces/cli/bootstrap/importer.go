package bootstrap

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ticketsla/ticketsla/internal/application/ticket/usecases"
	"github.com/ticketsla/ticketsla/internal/domain/ticket"
	"github.com/ticketsla/ticketsla/internal/infrastructure/config"
	"github.com/ticketsla/ticketsla/internal/infrastructure/ingestion"
	"github.com/ticketsla/ticketsla/internal/infrastructure/metrics"
	"github.com/ticketsla/ticketsla/internal/infrastructure/repository"
	"github.com/ticketsla/ticketsla/internal/shared/db"
	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

// Importer runs the ticket import and reports it to metrics.
type Importer struct {
	importUC usecases.ImportTicketsExecutor
	tickets  ticket.Repository
	metrics  *metrics.Metrics
	logger   logger.Interface
}

// NewImporter wires the import use case against gormDB. m may be nil.
func NewImporter(gormDB *gorm.DB, cfg *config.Config, m *metrics.Metrics, log logger.Interface) *Importer {
	ticketRepo := repository.NewTicketRepository(gormDB, cfg.Ingestion.BatchSize, log)
	return &Importer{
		importUC: usecases.NewImportTicketsUseCase(
			ticketRepo,
			repository.NewImportMarkerRepository(gormDB),
			db.NewTransactionManager(gormDB),
			ingestion.NewFileReader(),
			log,
		),
		tickets: ticketRepo,
		metrics: m,
		logger:  log.With("component", "importer"),
	}
}

func (i *Importer) Run(ctx context.Context, path string, force bool) (*usecases.ImportTicketsResult, error) {
	start := time.Now()
	result, err := i.importUC.Execute(ctx, usecases.ImportTicketsCommand{Path: path, Force: force})
	if err != nil {
		return nil, err
	}

	if !result.Skipped {
		i.metrics.ImportCompleted(result.Imported, time.Since(start))
	}

	stored, err := i.tickets.Count(ctx)
	if err != nil {
		i.logger.Warnw("failed to count stored tickets", "error", err)
		return result, nil
	}
	i.metrics.SetStoredTickets(int(stored))
	return result, nil
}
