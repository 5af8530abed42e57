package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, s *models.ChatSession) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error)
	AppendMessages(ctx context.Context, sessionID string, msgs []models.ChatMessage) error
	SetUnresolved(ctx context.Context, sessionID string, unresolved bool) error
	List(ctx context.Context, limit int) ([]models.ChatSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type chatSessionRepo struct {
	col *mongo.Collection
}

func NewChatSessionRepo(db *mongo.Database) ChatSessionRepository {
	return &chatSessionRepo{col: db.Collection("chat_sessions")}
}

func (r *chatSessionRepo) Create(ctx context.Context, s *models.ChatSession) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *chatSessionRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	var s models.ChatSession
	err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *chatSessionRepo) AppendMessages(ctx context.Context, sessionID string, msgs []models.ChatMessage) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"session_id": sessionID},
		bson.M{
			"$push": bson.M{"messages": bson.M{"$each": msgs}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *chatSessionRepo) SetUnresolved(ctx context.Context, sessionID string, unresolved bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"session_id": sessionID},
		bson.M{"$set": bson.M{"is_unresolved": unresolved}},
	)
	return err
}

func (r *chatSessionRepo) List(ctx context.Context, limit int) ([]models.ChatSession, error) {
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.ChatSession
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *chatSessionRepo) Delete(ctx context.Context, sessionID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
