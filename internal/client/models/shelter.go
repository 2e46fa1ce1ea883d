package models

// ShelterCreate is the payload for registering a new shelter.
type ShelterCreate struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ShelterOverview is the "my shelter" view shown to shelter administrators.
type ShelterOverview struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Address      string       `json:"address"`
	Phone        *string      `json:"phone"`
	Description  *string      `json:"description"`
	AnimalsCount int          `json:"animalsCount"`
	AdminsCount  int          `json:"adminsCount"`
	CurrentAdmin ShelterAdmin `json:"currentAdmin"`
}

// ShelterAdmin is an administrator of a shelter as listed in the membership
// screens.
type ShelterAdmin struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	IsAdminOwner bool   `json:"isAdminOwner,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
