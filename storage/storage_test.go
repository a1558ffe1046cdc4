package storage

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{
			name: "valid object id",
			id:   primitive.NewObjectID().Hex(),
		},
		{
			name:    "empty string",
			id:      "",
			wantErr: true,
		},
		{
			name:    "too short",
			id:      "abc123",
			wantErr: true,
		},
		{
			name:    "right length but not hex",
			id:      "zzzzzzzzzzzzzzzzzzzzzzzz",
			wantErr: true,
		},
		{
			name:    "hex but wrong length",
			id:      "0123456789abcdef",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := ParseID(tt.id)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v", tt.id, err)
			}
			if oid.Hex() != tt.id {
				t.Errorf("ParseID(%q) = %v, want round-trip", tt.id, oid.Hex())
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")

	cfg := LoadConfig()
	if cfg.URI != defaultURI {
		t.Errorf("cfg.URI = %q, want %q", cfg.URI, defaultURI)
	}
	if cfg.Database != defaultDatabase {
		t.Errorf("cfg.Database = %q, want %q", cfg.Database, defaultDatabase)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "admin_panel")

	cfg := LoadConfig()
	if cfg.URI != "mongodb://db.internal:27017" {
		t.Errorf("cfg.URI = %q, want env override", cfg.URI)
	}
	if cfg.Database != "admin_panel" {
		t.Errorf("cfg.Database = %q, want env override", cfg.Database)
	}
}
