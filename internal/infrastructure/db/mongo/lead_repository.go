package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barcraft/backoffice/internal/core/domain"
)

const leadsCollection = "leads"

type MongoLeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *MongoLeadRepository {
	return &MongoLeadRepository{coll: db.Collection(leadsCollection)}
}

type mongoLead struct {
	ID        string     `bson:"_id"`
	Kind      string     `bson:"kind"`
	Brand     string     `bson:"brand,omitempty"`
	Name      string     `bson:"name,omitempty"`
	Email     string     `bson:"email"`
	Phone     string     `bson:"phone,omitempty"`
	Message   string     `bson:"message,omitempty"`
	EventDate *time.Time `bson:"event_date,omitempty"`
	PartySize int        `bson:"party_size,omitempty"`
	CreatedAt time.Time  `bson:"created_at"`
}

func (r *MongoLeadRepository) Insert(ctx context.Context, lead *domain.Lead) error {
	doc := mongoLead{
		ID:        lead.ID,
		Kind:      string(lead.Kind),
		Brand:     lead.Brand,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Message:   lead.Message,
		EventDate: lead.EventDate,
		PartySize: lead.PartySize,
		CreatedAt: lead.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *MongoLeadRepository) List(ctx context.Context, kind domain.LeadKind) ([]domain.Lead, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = string(kind)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	var leads []domain.Lead
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, domain.Lead{
			ID:        ml.ID,
			Kind:      domain.LeadKind(ml.Kind),
			Brand:     ml.Brand,
			Name:      ml.Name,
			Email:     ml.Email,
			Phone:     ml.Phone,
			Message:   ml.Message,
			EventDate: ml.EventDate,
			PartySize: ml.PartySize,
			CreatedAt: ml.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}
