package models

import "time"

// Tenant is a province-level partition of the platform: one clinic
// jurisdiction with its own patients, staff and queues.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Province  string    `json:"province"`
	Code      string    `json:"code"`
	Timezone  string    `json:"timezone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
