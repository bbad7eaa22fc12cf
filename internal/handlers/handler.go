package handlers

import (
	"log/slog"

	"boardrank/internal/config"
	"boardrank/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	scoringService *services.ScoringService
	boardService   *services.BoardService
	auditService   *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	scoringService *services.ScoringService,
	boardService *services.BoardService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		scoringService: scoringService,
		boardService:   boardService,
		auditService:   auditService,
	}
}
