package repository

import (
	"context"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type donationMongoRepo struct {
	coll *mongo.Collection
}

func NewMongoDonationRepo(db *mongo.Database, collection string) DonationRepository {
	return &donationMongoRepo{coll: db.Collection(collection)}
}

func (r *donationMongoRepo) Insert(ctx context.Context, req *models.DonationRequest) (*InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}
	return &InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *donationMongoRepo) GetByID(ctx context.Context, id string) (*models.DonationRequest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var req models.DonationRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *donationMongoRepo) List(ctx context.Context) ([]models.DonationRequest, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *donationMongoRepo) ListByRequester(ctx context.Context, email, status string, page, size int64) ([]models.DonationRequest, error) {
	filter := bson.M{"requester_email": email}
	if status != "" {
		filter["request_status"] = status
	}
	opts := options.Find().SetSkip(page * size).SetLimit(size)
	return r.find(ctx, filter, opts)
}

func (r *donationMongoRepo) RecentByRequester(ctx context.Context, email string, limit int64) ([]models.DonationRequest, error) {
	filter := bson.M{"requester_email": email}
	opts := options.Find().
		SetSort(bson.D{{Key: "creation_time", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, filter, opts)
}

func (r *donationMongoRepo) CountByRequester(ctx context.Context, email, status string) (int64, error) {
	filter := bson.M{}
	if email != "" {
		filter["requester_email"] = email
	}
	if status != "" {
		filter["request_status"] = status
	}
	return r.coll.CountDocuments(ctx, filter)
}

func (r *donationMongoRepo) ListPaged(ctx context.Context, status string, page, size int64) ([]models.DonationRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["request_status"] = status
	}
	opts := options.Find().SetSkip(page * size).SetLimit(size)
	return r.find(ctx, filter, opts)
}

func (r *donationMongoRepo) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["request_status"] = status
	}
	return r.coll.CountDocuments(ctx, filter)
}

func (r *donationMongoRepo) Assign(ctx context.Context, id, donorName, donorEmail string) (*UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"request_status": models.RequestInProgress,
		"donor_name":     donorName,
		"donor_email":    donorEmail,
	}}
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
	if err != nil {
		return nil, err
	}
	return updateAck(res), nil
}

func (r *donationMongoRepo) SetStatus(ctx context.Context, id, status string) (*UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"request_status": status}})
	if err != nil {
		return nil, err
	}
	return updateAck(res), nil
}

func (r *donationMongoRepo) Replace(ctx context.Context, id string, details models.DonationDetails) (*UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": details}, opts)
	if err != nil {
		return nil, err
	}
	return updateAck(res), nil
}

func (r *donationMongoRepo) Delete(ctx context.Context, id string) (*DeleteAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *donationMongoRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.DonationRequest, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
