package repository

import (
	"context"
	"errors"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid object id")
)

// Ack types mirror the driver acknowledgment objects the frontend already
// consumes (insertedId, matchedCount, and friends).

type InsertAck struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateAck struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (*InsertAck, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// UpdateProfile replaces the profile fields of the user with the given
	// id, inserting a new document when the id is absent.
	UpdateProfile(ctx context.Context, id string, profile models.UserProfile) (*UpdateAck, error)
	SetRole(ctx context.Context, id, role string) (*UpdateAck, error)
	SetStatus(ctx context.Context, id, status string) (*UpdateAck, error)
}

type DonationRepository interface {
	Insert(ctx context.Context, req *models.DonationRequest) (*InsertAck, error)
	GetByID(ctx context.Context, id string) (*models.DonationRequest, error)
	List(ctx context.Context) ([]models.DonationRequest, error)
	// ListByRequester filters by requester email and optional status,
	// skipping page*size documents and returning at most size.
	ListByRequester(ctx context.Context, email, status string, page, size int64) ([]models.DonationRequest, error)
	// RecentByRequester returns the newest requests by creation_time.
	RecentByRequester(ctx context.Context, email string, limit int64) ([]models.DonationRequest, error)
	CountByRequester(ctx context.Context, email, status string) (int64, error)
	// ListPaged is the staff view: optional status filter, page*size skip.
	ListPaged(ctx context.Context, status string, page, size int64) ([]models.DonationRequest, error)
	Count(ctx context.Context, status string) (int64, error)
	// Assign marks the request inprogress and attaches the donor identity.
	Assign(ctx context.Context, id, donorName, donorEmail string) (*UpdateAck, error)
	SetStatus(ctx context.Context, id, status string) (*UpdateAck, error)
	// Replace updates the descriptive fields only, inserting when absent.
	Replace(ctx context.Context, id string, details models.DonationDetails) (*UpdateAck, error)
	Delete(ctx context.Context, id string) (*DeleteAck, error)
}
