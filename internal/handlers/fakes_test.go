package handlers_test

import (
	"context"

	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/models"
	"github.com/ShakeefAhmedRakin/BloodBridge-Server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories with the same id and error semantics as the Mongo
// implementations.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) (*repository.InsertAck, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return &repository.InsertAck{Acknowledged: true, InsertedID: user.ID}, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id string, profile models.UserProfile) (*repository.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, u := range f.users {
		if u.ID == oid {
			u.Name = profile.Name
			u.Image = profile.Image
			u.BloodGroup = profile.BloodGroup
			u.District = profile.District
			u.Upazilla = profile.Upazilla
			return &repository.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	f.users = append(f.users, &models.User{
		ID:         oid,
		Name:       profile.Name,
		Image:      profile.Image,
		BloodGroup: profile.BloodGroup,
		District:   profile.District,
		Upazilla:   profile.Upazilla,
	})
	return &repository.UpdateAck{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id, role string) (*repository.UpdateAck, error) {
	return f.setField(id, func(u *models.User) bool {
		changed := u.Role != role
		u.Role = role
		return changed
	})
}

func (f *fakeUserRepo) SetStatus(_ context.Context, id, status string) (*repository.UpdateAck, error) {
	return f.setField(id, func(u *models.User) bool {
		changed := u.Status != status
		u.Status = status
		return changed
	})
}

func (f *fakeUserRepo) setField(id string, apply func(*models.User) bool) (*repository.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, u := range f.users {
		if u.ID == oid {
			ack := &repository.UpdateAck{Acknowledged: true, MatchedCount: 1}
			if apply(u) {
				ack.ModifiedCount = 1
			}
			return ack, nil
		}
	}
	return &repository.UpdateAck{Acknowledged: true}, nil
}

type fakeDonationRepo struct {
	requests []*models.DonationRequest
}

func (f *fakeDonationRepo) Insert(_ context.Context, req *models.DonationRequest) (*repository.InsertAck, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	f.requests = append(f.requests, req)
	return &repository.InsertAck{Acknowledged: true, InsertedID: req.ID}, nil
}

func (f *fakeDonationRepo) GetByID(_ context.Context, id string) (*models.DonationRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, r := range f.requests {
		if r.ID == oid {
			copied := *r
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDonationRepo) List(_ context.Context) ([]models.DonationRequest, error) {
	return f.collect(func(*models.DonationRequest) bool { return true }), nil
}

func (f *fakeDonationRepo) ListByRequester(_ context.Context, email, status string, page, size int64) ([]models.DonationRequest, error) {
	matched := f.collect(func(r *models.DonationRequest) bool {
		return r.RequesterEmail == email && (status == "" || r.RequestStatus == status)
	})
	return slice(matched, page*size, size), nil
}

func (f *fakeDonationRepo) RecentByRequester(_ context.Context, email string, limit int64) ([]models.DonationRequest, error) {
	matched := f.collect(func(r *models.DonationRequest) bool {
		return r.RequesterEmail == email
	})
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			if matched[j].CreationTime.After(matched[i].CreationTime) {
				matched[i], matched[j] = matched[j], matched[i]
			}
		}
	}
	return slice(matched, 0, limit), nil
}

func (f *fakeDonationRepo) CountByRequester(_ context.Context, email, status string) (int64, error) {
	matched := f.collect(func(r *models.DonationRequest) bool {
		return (email == "" || r.RequesterEmail == email) && (status == "" || r.RequestStatus == status)
	})
	return int64(len(matched)), nil
}

func (f *fakeDonationRepo) ListPaged(_ context.Context, status string, page, size int64) ([]models.DonationRequest, error) {
	matched := f.collect(func(r *models.DonationRequest) bool {
		return status == "" || r.RequestStatus == status
	})
	return slice(matched, page*size, size), nil
}

func (f *fakeDonationRepo) Count(_ context.Context, status string) (int64, error) {
	matched := f.collect(func(r *models.DonationRequest) bool {
		return status == "" || r.RequestStatus == status
	})
	return int64(len(matched)), nil
}

func (f *fakeDonationRepo) Assign(_ context.Context, id, donorName, donorEmail string) (*repository.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, r := range f.requests {
		if r.ID == oid {
			r.RequestStatus = models.RequestInProgress
			r.DonorName = donorName
			r.DonorEmail = donorEmail
			return &repository.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	f.requests = append(f.requests, &models.DonationRequest{
		ID:            oid,
		RequestStatus: models.RequestInProgress,
		DonorName:     donorName,
		DonorEmail:    donorEmail,
	})
	return &repository.UpdateAck{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (f *fakeDonationRepo) SetStatus(_ context.Context, id, status string) (*repository.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, r := range f.requests {
		if r.ID == oid {
			ack := &repository.UpdateAck{Acknowledged: true, MatchedCount: 1}
			if r.RequestStatus != status {
				r.RequestStatus = status
				ack.ModifiedCount = 1
			}
			return ack, nil
		}
	}
	return &repository.UpdateAck{Acknowledged: true}, nil
}

func (f *fakeDonationRepo) Replace(_ context.Context, id string, details models.DonationDetails) (*repository.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for _, r := range f.requests {
		if r.ID == oid {
			r.RequesterEmail = details.RequesterEmail
			r.RequesterName = details.RequesterName
			r.RecipientName = details.RecipientName
			r.HospitalName = details.HospitalName
			r.Address = details.Address
			r.RecipientDistrict = details.RecipientDistrict
			r.RecipientUpazilla = details.RecipientUpazilla
			r.RequestDate = details.RequestDate
			r.RequestTime = details.RequestTime
			r.RequesterMessage = details.RequesterMessage
			return &repository.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &repository.UpdateAck{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (f *fakeDonationRepo) Delete(_ context.Context, id string) (*repository.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	for i, r := range f.requests {
		if r.ID == oid {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return &repository.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &repository.DeleteAck{Acknowledged: true}, nil
}

func (f *fakeDonationRepo) collect(match func(*models.DonationRequest) bool) []models.DonationRequest {
	out := []models.DonationRequest{}
	for _, r := range f.requests {
		if match(r) {
			out = append(out, *r)
		}
	}
	return out
}

func slice(in []models.DonationRequest, skip, limit int64) []models.DonationRequest {
	if skip >= int64(len(in)) {
		return []models.DonationRequest{}
	}
	in = in[skip:]
	if limit > 0 && limit < int64(len(in)) {
		in = in[:limit]
	}
	return in
}
