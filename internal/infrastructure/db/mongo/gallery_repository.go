package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barcraft/backoffice/internal/core/domain"
)

const galleryCollection = "gallery_images"

type MongoGalleryRepository struct {
	coll *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *MongoGalleryRepository {
	return &MongoGalleryRepository{coll: db.Collection(galleryCollection)}
}

type mongoImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Caption     string             `bson:"caption,omitempty"`
	ImageURL    string             `bson:"image_url"`
	Brand       string             `bson:"brand"`
	Status      string             `bson:"status"`
	SubmittedBy string             `bson:"submitted_by"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	ReviewedBy  string             `bson:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time         `bson:"reviewed_at,omitempty"`
}

func (r *MongoGalleryRepository) Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error) {
	doc := mongoImage{
		Title:       image.Title,
		Caption:     image.Caption,
		ImageURL:    image.ImageURL,
		Brand:       image.Brand,
		Status:      string(image.Status),
		SubmittedBy: image.SubmittedBy,
		SubmittedAt: image.SubmittedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert image: %w", err)
	}

	created := *image
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoGalleryRepository) FindByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrImageNotFound
	}

	var mi mongoImage
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("find image: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *MongoGalleryRepository) List(ctx context.Context, status domain.ImageStatus) ([]domain.GalleryImage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	defer cur.Close(ctx)

	var images []domain.GalleryImage
	for cur.Next(ctx) {
		var mi mongoImage
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		images = append(images, *mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return images, nil
}

func (r *MongoGalleryRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ImageStatus, reviewedBy string, reviewedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrImageNotFound
	}

	// Filtering on the prior status makes the decision atomic: of two
	// concurrent reviews only one can match, the other sees MatchedCount 0.
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "status": string(from)}, bson.M{"$set": bson.M{
		"status":      string(to),
		"reviewed_by": reviewedBy,
		"reviewed_at": reviewedAt,
	}})
	if err != nil {
		return fmt.Errorf("update image status: %w", err)
	}
	if res.MatchedCount == 0 {
		findErr := r.coll.FindOne(ctx, bson.M{"_id": oid}).Err()
		switch {
		case findErr == mongo.ErrNoDocuments:
			return domain.ErrImageNotFound
		case findErr != nil:
			return fmt.Errorf("update image status: %w", findErr)
		}
		return domain.ErrInvalidTransition
	}
	return nil
}

func (mi *mongoImage) toDomain() *domain.GalleryImage {
	return &domain.GalleryImage{
		ID:          mi.ID.Hex(),
		Title:       mi.Title,
		Caption:     mi.Caption,
		ImageURL:    mi.ImageURL,
		Brand:       mi.Brand,
		Status:      domain.ImageStatus(mi.Status),
		SubmittedBy: mi.SubmittedBy,
		SubmittedAt: mi.SubmittedAt,
		ReviewedBy:  mi.ReviewedBy,
		ReviewedAt:  mi.ReviewedAt,
	}
}
