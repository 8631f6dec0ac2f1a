package identity

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Identity is attached to every classification response as-is.
type Identity struct {
	UserID     string `yaml:"user_id"`
	Email      string `yaml:"email"`
	RollNumber string `yaml:"roll_number"`
}

func Load(path string) (*Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open identity file: %w", err)
	}
	defer f.Close()

	var id Identity
	if err := yaml.NewDecoder(f).Decode(&id); err != nil {
		return nil, fmt.Errorf("parse identity YAML: %w", err)
	}
	return &id, nil
}

func FromEnv() Identity {
	return Identity{
		UserID:     os.Getenv("BFHL_USER_ID"),
		Email:      os.Getenv("BFHL_EMAIL"),
		RollNumber: os.Getenv("BFHL_ROLL_NUMBER"),
	}
}

// Resolve loads the profile at path when set, then lets non-empty env vars win.
func Resolve(path string) (*Identity, error) {
	base := &Identity{}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		base = loaded
	}

	base.merge(FromEnv())
	if base.UserID == "" {
		slog.Warn("No user id configured, responses will carry an empty user_id")
	}
	return base, nil
}

func (id *Identity) merge(o Identity) {
	if o.UserID != "" {
		id.UserID = o.UserID
	}
	if o.Email != "" {
		id.Email = o.Email
	}
	if o.RollNumber != "" {
		id.RollNumber = o.RollNumber
	}
}
