package model

import "time"

type TokenClaim struct {
	UserId string `json:"id"`
	Role   string `json:"role"`
}

// Timestamps is embedded by every persisted record. Ids are generated uuids.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
