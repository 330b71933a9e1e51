package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestPending    = "pending"
	RequestInProgress = "inprogress"
	RequestDone       = "done"
	RequestCancelled  = "cancelled"
)

// DonationRequest is a blood donation request document. Donor fields are
// empty until a donor accepts the request; status transitions are not
// validated against the current value.
type DonationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterEmail    string             `bson:"requester_email,omitempty" json:"requester_email,omitempty"`
	RequesterName     string             `bson:"requester_name,omitempty" json:"requester_name,omitempty"`
	RecipientName     string             `bson:"recipient_name,omitempty" json:"recipient_name,omitempty"`
	HospitalName      string             `bson:"hospital_name,omitempty" json:"hospital_name,omitempty"`
	Address           string             `bson:"address,omitempty" json:"address,omitempty"`
	RecipientDistrict string             `bson:"recipient_district,omitempty" json:"recipient_district,omitempty"`
	RecipientUpazilla string             `bson:"recipient_upazilla,omitempty" json:"recipient_upazilla,omitempty"`
	RequestDate       string             `bson:"request_date,omitempty" json:"request_date,omitempty"`
	RequestTime       string             `bson:"request_time,omitempty" json:"request_time,omitempty"`
	RequesterMessage  string             `bson:"requester_message,omitempty" json:"requester_message,omitempty"`
	RequestStatus     string             `bson:"request_status,omitempty" json:"request_status,omitempty"`
	DonorName         string             `bson:"donor_name,omitempty" json:"donor_name,omitempty"`
	DonorEmail        string             `bson:"donor_email,omitempty" json:"donor_email,omitempty"`
	CreationTime      time.Time          `bson:"creation_time,omitempty" json:"creation_time,omitempty"`
}

// DonationDetails is the requester-editable part of a request document.
// Status and donor fields move only through the accept/done/cancel routes.
type DonationDetails struct {
	RequesterEmail    string `bson:"requester_email,omitempty" json:"requester_email,omitempty"`
	RequesterName     string `bson:"requester_name,omitempty" json:"requester_name,omitempty"`
	RecipientName     string `bson:"recipient_name,omitempty" json:"recipient_name,omitempty"`
	HospitalName      string `bson:"hospital_name,omitempty" json:"hospital_name,omitempty"`
	Address           string `bson:"address,omitempty" json:"address,omitempty"`
	RecipientDistrict string `bson:"recipient_district,omitempty" json:"recipient_district,omitempty"`
	RecipientUpazilla string `bson:"recipient_upazilla,omitempty" json:"recipient_upazilla,omitempty"`
	RequestDate       string `bson:"request_date,omitempty" json:"request_date,omitempty"`
	RequestTime       string `bson:"request_time,omitempty" json:"request_time,omitempty"`
	RequesterMessage  string `bson:"requester_message,omitempty" json:"requester_message,omitempty"`
}
