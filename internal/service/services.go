package service

import (
	"fmt"

	"github.com/MKhiriev/settings2markdown/internal/config"
	"github.com/MKhiriev/settings2markdown/internal/logger"
)

type Services struct {
	TableService TableService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tableService, err := NewTableService(cfg.Render, logger.GetChildLogger("table"))
	if err != nil {
		return nil, fmt.Errorf("create table service: %w", err)
	}

	return &Services{
		TableService: tableService,
	}, nil
}
