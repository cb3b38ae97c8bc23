package domain

import "github.com/golang-jwt/jwt/v5"

// Portal roles. Tokens are issued by the auth collaborator; this
// service only validates and routes on them.
const (
	RoleAdmin  = "admin"
	RoleTeam   = "team"
	RoleClient = "client"
)

// Claims is the JWT payload carried by portal sessions.
type Claims struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}
