// Package googleauth handles the stored Google identity: OAuth token
// loading and the owner profile captured at login.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"daylist/internal/config"
	"daylist/internal/service"
)

// OAuth scopes. Firestore is accessed with the end user's own
// credentials; the email scope identifies the account at login.
const (
	DatastoreScope = "https://www.googleapis.com/auth/datastore"
	EmailScope     = "https://www.googleapis.com/auth/userinfo.email"
)

// Profile is the authenticated owner, persisted as profile.json.
type Profile struct {
	OwnerID string `json:"ownerId"`
	Email   string `json:"email"`
}

// CurrentOwner returns the stored owner id, or ErrUnauthenticated when
// no profile has been saved. No network calls are made; the profile is
// written once at login.
func CurrentOwner(cfg *config.Config) (string, error) {
	p, err := LoadProfile(cfg)
	if err != nil {
		return "", service.ErrUnauthenticated
	}
	if p.OwnerID == "" {
		return "", service.ErrUnauthenticated
	}
	return p.OwnerID, nil
}

// LoadProfile reads the stored owner profile.
func LoadProfile(cfg *config.Config) (Profile, error) {
	data, err := os.ReadFile(cfg.ProfilePath())
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("invalid %s: %w", config.ProfileFile, err)
	}
	return p, nil
}

// SaveProfile writes the owner profile with mode 0600.
func SaveProfile(cfg *config.Config, p Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.ProfilePath(), data, 0600)
}

// OAuthConfig loads oauth_client.json with the scopes daylist needs.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.OAuthClientFile, err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, DatastoreScope, EmailScope)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.OAuthClientFile, err)
	}
	return oauthConfig, nil
}

// TokenSource builds an auto-refreshing token source from the stored
// token.
func TokenSource(ctx context.Context, cfg *config.Config) (oauth2.TokenSource, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.TokenFile, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.TokenFile, err)
	}

	return oauthConfig.TokenSource(ctx, &token), nil
}

// SaveToken saves an OAuth token to a file with mode 0600.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
