package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	// MongoDB is nil when the store bootstrap ran in degraded mode.
	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
