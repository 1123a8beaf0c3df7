package types

import "github.com/golang-jwt/jwt/v5"

// Claims carries the identity context the workflow and retrieval engines
// trust completely: id, role, zone and contact details.
type Claims struct {
	UserID int    `json:"user_id"`
	RoleID int    `json:"role_id"`
	Zone   string `json:"zone"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}
