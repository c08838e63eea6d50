package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"promptdeck/models"
)

type CategorizeLogRepository struct {
	col *mongo.Collection
}

func NewCategorizeLogRepository(db *mongo.Database) *CategorizeLogRepository {
	return &CategorizeLogRepository{col: db.Collection("categorize_logs")}
}

func (r *CategorizeLogRepository) Insert(ctx context.Context, l models.CategorizeLog) (*mongo.InsertOneResult, error) {
	return r.col.InsertOne(ctx, l)
}
