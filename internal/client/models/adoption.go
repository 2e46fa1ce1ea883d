package models

// AdoptionStatus is the lifecycle state of an adoption request.
type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "PENDING"
	AdoptionApproved AdoptionStatus = "APPROVED"
	AdoptionRejected AdoptionStatus = "REJECTED"
)

// Requester is the user summary embedded in shelter-side adoption views.
type Requester struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// AdoptionRequest is a user's request to adopt an animal. The embedded Animal
// carries its shelter info on the requester's own view; the shelter-side view
// embeds the requesting User instead.
type AdoptionRequest struct {
	ID        int64          `json:"id"`
	Message   string         `json:"message"`
	Status    AdoptionStatus `json:"status"`
	UserID    int64          `json:"userId"`
	AnimalID  int64          `json:"animalId"`
	AdminID   *int64         `json:"adminId"`
	CreatedAt string         `json:"createdAt"`
	Animal    *Animal        `json:"animal,omitempty"`
	User      *Requester     `json:"user,omitempty"`
}
