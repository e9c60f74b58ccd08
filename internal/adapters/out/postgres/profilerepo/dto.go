// Package profilerepo resolves actor capabilities from the profiles table.
// It backs the IdentityProvider port: the inbound adapter asks it once per
// request whether the actor is an admin and whether the account is active,
// and the answers travel into commands as plain booleans.
package profilerepo

import (
	"github.com/google/uuid"
)

// ProfileDTO represents the database structure for actor profiles.
// Account management itself lives with the identity collaborator; this
// service only reads the capability columns.
type ProfileDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName string
	IsAdmin     bool
	IsActive    bool
}

// TableName specifies the database table name for profiles.
func (ProfileDTO) TableName() string {
	return "profiles"
}
