package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// OAuthClient is a machine client (partner integration, storefront backend)
// allowed to obtain tokens from the /oauth/token endpoint. Secret holds a
// bcrypt hash; the plain secret is shown once at creation time.
type OAuthClient struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Secret      string `gorm:"not null" json:"-"`
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	UserID      uint   `json:"user_id"`
	Scopes      string `json:"scopes"`       // space-separated, e.g. "catalog:read catalog:write"
	GrantTypes  string `json:"grant_types"`  // space-separated: "authorization_code client_credentials"
	RedirectURI string `json:"redirect_uri"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// oauth2.ClientInfo implementation, consumed by the go-oauth2 manager.

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}
