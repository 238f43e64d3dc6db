package audit

import (
	"context"

	"go-marketplace/internal/database"
	"go-marketplace/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository persists audit entries outside the in-memory store.
type AuditRepository interface {
	Enabled() bool
	Create(ctx context.Context, entry models.AuditLogEntry) error
}

type AuditRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAuditRepository(mongodb *database.MongodbDB) AuditRepository {
	if !mongodb.Enabled() {
		return &AuditRepositoryImpl{}
	}
	return &AuditRepositoryImpl{
		Collection: mongodb.DB.Collection("audit_logs"),
	}
}

func (r *AuditRepositoryImpl) Enabled() bool {
	return r.Collection != nil
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, entry models.AuditLogEntry) error {
	_, err := r.Collection.InsertOne(ctx, entry)
	return err
}
