package repository

import (
	"context"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userMongoRepo struct {
	coll *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database, collection string) UserRepository {
	return &userMongoRepo{coll: db.Collection(collection)}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func updateAck(res *mongo.UpdateResult) *UpdateAck {
	ack := &UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		ack.UpsertedID = res.UpsertedID
	}
	return ack
}

func (r *userMongoRepo) Insert(ctx context.Context, user *models.User) (*InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &InsertAck{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *userMongoRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userMongoRepo) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userMongoRepo) UpdateProfile(ctx context.Context, id string, profile models.UserProfile) (*UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
	if err != nil {
		return nil, err
	}
	return updateAck(res), nil
}

func (r *userMongoRepo) SetRole(ctx context.Context, id, role string) (*UpdateAck, error) {
	return r.setField(ctx, id, "role", role)
}

func (r *userMongoRepo) SetStatus(ctx context.Context, id, status string) (*UpdateAck, error) {
	return r.setField(ctx, id, "status", status)
}

func (r *userMongoRepo) setField(ctx context.Context, id, field, value string) (*UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return nil, err
	}
	return updateAck(res), nil
}
