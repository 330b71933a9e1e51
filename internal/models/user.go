package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User is stored as-is: fields the client never sent stay absent in the
// document, there is no implicit defaulting of role or status.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	BloodGroup string             `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazilla   string             `bson:"upazilla,omitempty" json:"upazilla,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
}

// UserProfile is the replaceable part of a user document. Role and status
// are managed through their own admin routes and never travel with a
// profile update.
type UserProfile struct {
	Name       string `bson:"name,omitempty" json:"name,omitempty"`
	Image      string `bson:"image,omitempty" json:"image,omitempty"`
	BloodGroup string `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	District   string `bson:"district,omitempty" json:"district,omitempty"`
	Upazilla   string `bson:"upazilla,omitempty" json:"upazilla,omitempty"`
}
