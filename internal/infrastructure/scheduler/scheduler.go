// Package scheduler tareas programadas: archivado nocturno del estado de cuenta del día.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

// Exporter genera el archivo de un alcance (reporting.StatementUseCase).
type Exporter interface {
	Export(ctx context.Context, scope reporting.Scope, format reporting.Format) (*dto.FileResult, error)
}

// Scheduler gestiona las tareas programadas.
type Scheduler struct {
	cron     *cron.Cron
	exporter Exporter
	cfg      config.ArchiveConfig
	log      *logger.Logger
}

// NewScheduler crea el scheduler. loc es la zona en la que se evalúa la expresión cron.
func NewScheduler(cfg config.ArchiveConfig, exporter Exporter, loc *time.Location, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		exporter: exporter,
		cfg:      cfg,
		log:      log.Component("scheduler"),
	}
}

// Start registra el archivado y arranca el cron. Sin directorio configurado no hace nada.
func (s *Scheduler) Start() error {
	if s.cfg.Dir == "" {
		s.log.Info().Msg("archivado desactivado (ARCHIVE_DIR vacío)")
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.Cron, s.archiveJob); err != nil {
		return fmt.Errorf("scheduler: expresión %q: %w", s.cfg.Cron, err)
	}
	s.log.Info().Str("cron", s.cfg.Cron).Str("dir", s.cfg.Dir).Msg("archivado programado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine la tarea en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) archiveJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	files, err := s.Archive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("archivado fallido")
		return
	}
	if len(files) == 0 {
		s.log.Info().Msg("sin movimientos hoy, nada que archivar")
		return
	}
	s.log.Info().Strs("files", files).Msg("estado del día archivado")
}

// Archive escribe el estado TODAY en PDF y XLSX dentro del directorio configurado.
// Devuelve las rutas escritas; ninguna si el día no tiene movimientos.
func (s *Scheduler) Archive(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("scheduler: crear directorio: %w", err)
	}
	scope := reporting.Scope{Kind: reporting.ScopeToday}
	var written []string
	for _, format := range []reporting.Format{reporting.FormatPDF, reporting.FormatXLSX} {
		file, err := s.exporter.Export(ctx, scope, format)
		if errors.Is(err, domain.ErrEmptyStatement) {
			return nil, nil
		}
		if err != nil {
			return written, fmt.Errorf("scheduler: exportar %s: %w", format, err)
		}
		path := filepath.Join(s.cfg.Dir, file.Filename)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return written, fmt.Errorf("scheduler: escribir %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
