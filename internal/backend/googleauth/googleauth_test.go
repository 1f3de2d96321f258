package googleauth_test

import (
	"errors"
	"testing"

	"daylist/internal/backend/googleauth"
	"daylist/internal/config"
	"daylist/internal/service"
)

func TestProfileRoundTrip(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	saved := googleauth.Profile{OwnerID: "108123456789", Email: "u@example.com"}
	if err := googleauth.SaveProfile(cfg, saved); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	loaded, err := googleauth.LoadProfile(cfg)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if loaded != saved {
		t.Errorf("loaded %+v, want %+v", loaded, saved)
	}

	owner, err := googleauth.CurrentOwner(cfg)
	if err != nil {
		t.Fatalf("CurrentOwner: %v", err)
	}
	if owner != saved.OwnerID {
		t.Errorf("CurrentOwner() = %q, want %q", owner, saved.OwnerID)
	}
}

func TestCurrentOwner_NoProfile(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	_, err := googleauth.CurrentOwner(cfg)
	if !errors.Is(err, service.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCurrentOwner_EmptyOwnerID(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	if err := googleauth.SaveProfile(cfg, googleauth.Profile{Email: "u@example.com"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	_, err := googleauth.CurrentOwner(cfg)
	if !errors.Is(err, service.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}
