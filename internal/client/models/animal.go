package models

// AnimalPhoto is a hosted image attached to an animal. The ID is present on
// admin views only; the public catalog exposes bare URLs.
type AnimalPhoto struct {
	ID  int64  `json:"id,omitempty"`
	URL string `json:"url"`
}

// ShelterInfo is the shelter summary embedded in public animal views.
type ShelterInfo struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Animal is an adoptable animal as returned by both the public catalog and
// the admin listing. Age is nullable on the wire; Adopted and ShelterID are
// zero-valued on public list entries that omit them.
type Animal struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Species     string        `json:"species"`
	Breed       string        `json:"breed"`
	Gender      string        `json:"gender"`
	Age         *int          `json:"age"`
	Description *string       `json:"description"`
	Adopted     bool          `json:"adopted"`
	ShelterID   int64         `json:"shelterId,omitempty"`
	Photos      []AnimalPhoto `json:"photos"`
	Shelter     *ShelterInfo  `json:"shelter,omitempty"`
}

// AnimalUpsert is the payload for creating or updating an animal.
type AnimalUpsert struct {
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Breed       string  `json:"breed"`
	Gender      string  `json:"gender"`
	Age         *int    `json:"age"`
	Description *string `json:"description"`
	Adopted     bool    `json:"adopted"`
}
