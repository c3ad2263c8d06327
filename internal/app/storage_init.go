package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/giftnama/internal/storage/mongodb"
)

// initStorage открывает подключение к MongoDB.
// Возвращает nil, nil при пустом url: хранилище опционально, сервис умеет
// работать без него. Ошибка подключения тоже не фатальна для вызывающего.
func initStorage(ctx context.Context, url, dbName string, logger *log.Entry) (*mongodb.Store, error) {
	if url == "" {
		logger.Warn("DATABASE_URL is not set, running without a store")
		return nil, nil
	}

	store, err := mongodb.Open(ctx, url, dbName)
	if err != nil {
		logger.WithError(err).Warn("failed to connect to mongodb, continuing without a store")
		return nil, err
	}

	logger.WithField("database", dbName).Info("connected to mongodb")
	return store, nil
}
