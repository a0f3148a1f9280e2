package userprofile

import (
	"investments-api/pkg/logger"
	"investments-api/src/database"
)

func Build(db *database.Database, investments InvestmentLister, log *logger.Logger) *Handler {
	repo := NewRepository(db)
	service := NewService(repo)
	return NewHandler(service, investments, log)
}
