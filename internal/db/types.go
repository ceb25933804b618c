package db

import (
	"time"

	"github.com/google/uuid"
)

// Contact platforms
const (
	PlatformWeb     = "web"
	PlatformAndroid = "android"
)

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Platform  string    `json:"platform"`
	RemoteIP  string    `json:"remote_ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Scan represents a stored analysis report
type Scan struct {
	ID                uuid.UUID `json:"id"`
	URL               string    `json:"url"`
	TotalTechnologies int       `json:"total_technologies"`
	Report            []byte    `json:"report,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
