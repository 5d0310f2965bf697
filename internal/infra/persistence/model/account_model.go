package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountModel mirrors the 'contas' table holding authentication accounts.
// Metadata carries the flags set at account creation, such as is_admin;
// authorization itself reads user_roles.
type AccountModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"column:senha_hash;type:varchar(255);not null"`
	Metadata     datatypes.JSON `gorm:"column:metadados"`
	CreatedAt    time.Time

	Profile *ProfileModel `gorm:"foreignKey:ID;references:ID"`
	Roles   []RoleModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "contas"
}

// ProfileModel mirrors the 'profiles' table. The id equals the account id.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"column:full_name;type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// RoleModel mirrors the 'user_roles' table.
type RoleModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(20);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "user_roles"
}
