package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceConfig holds the configuration for one signpost catalog server
type ServiceConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Port int    `json:"port"`
	// RedirectStatus is the HTTP status used by the /go/:name surface,
	// 302 by default so clients re-resolve when the catalog changes
	RedirectStatus int       `json:"redirectStatus,omitempty"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// GenerateShortID creates a short UUID for catalog identification
func GenerateShortID() string {
	return uuid.New().String()[:8]
}

// NewServiceConfig creates a new server configuration with defaults
func NewServiceConfig(name string, port int) ServiceConfig {
	id := GenerateShortID()

	// If no name provided, use the ID
	if name == "" {
		name = id
	}

	return ServiceConfig{
		ID:             id,
		Name:           name,
		Port:           port,
		RedirectStatus: 302,
		Status:         "running",
		CreatedAt:      time.Now(),
	}
}
