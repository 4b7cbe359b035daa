package model

import (
	"strings"
	"time"
)

// Canonical role names. Every authorization check compares against these.
const (
	RoleOwner      = "Propriétaire"
	RoleCommercial = "Commercial"
	RoleLogistics  = "Logistique"
	RoleFinance    = "Finance"
	RoleVisitor    = "Visiteur"
)

var roleAliases = map[string]string{
	"admin":        RoleOwner,
	"owner":        RoleOwner,
	"propriétaire": RoleOwner,
	"commercial":   RoleCommercial,
	"logistics":    RoleLogistics,
	"logistique":   RoleLogistics,
	"finance":      RoleFinance,
	"visitor":      RoleVisitor,
	"visiteur":     RoleVisitor,
}

// CanonicalRole maps English or lower-cased role names onto the canonical
// French taxonomy. Unknown roles are returned unchanged.
func CanonicalRole(role string) string {
	if mapped, ok := roleAliases[strings.ToLower(strings.TrimSpace(role))]; ok {
		return mapped
	}
	return role
}

// User is an account allowed to sign in. Role gates every mutating operation.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:256;not null"`
	Name         string `gorm:"size:100;not null"`
	Role         string `gorm:"size:50;not null"`
	CreatedAt    time.Time
	InvitedBy    *uint
}

func (User) TableName() string { return "users" }
