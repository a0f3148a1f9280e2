package investment

import (
	"investments-api/pkg/logger"
	"investments-api/src/database"
)

func Build(db *database.Database, log *logger.Logger) (*Service, *Handler) {
	repo := NewRepository(db)
	service := NewService(repo)
	return service, NewHandler(service, log)
}
