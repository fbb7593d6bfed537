package types

import "github.com/google/uuid"

// App is an application registered on the platform.
type App struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// Channel is a named delivery stream for a deployed app. Every deployment
// gets one channel per delivery target; logs are fetched per channel.
type Channel struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	AppID uuid.UUID `json:"app_id"`
	// Domain is the public hostname the channel serves, if any.
	Domain string `json:"domain,omitempty"`
}

// User is the account the current token belongs to.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
