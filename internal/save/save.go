// Package save defines the persisted kingdom schema and the stores that hold it.
package save

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/cory-johannsen/frontier/internal/game/kingdom"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// Version is the newest schema this build reads and the one it writes.
const Version = 1

var (
	// ErrFutureVersion is returned for a save written by a newer build.
	ErrFutureVersion = errors.New("save was written by a newer version")
	// ErrNotFound is returned when a slot holds no save.
	ErrNotFound = errors.New("save not found")
	// ErrChecksum is returned when a save file has been altered or truncated.
	ErrChecksum = errors.New("save checksum mismatch")
)

// Data is everything persisted between sessions.
type Data struct {
	Version           int              `json:"version"`
	Kingdom           kingdom.State    `json:"kingdom"`
	Roster            kingdom.Roster   `json:"roster"`
	UnlockedCards     []string         `json:"unlocked_cards"`
	UnlockedBuildings []string         `json:"unlocked_buildings"`
	RegionsExplored   []string         `json:"regions_explored"`
	TotalMissions     int              `json:"total_missions"`
	TotalDeaths       int              `json:"total_deaths"`
	Regions           []mission.Region `json:"regions,omitempty"`
}

// Store persists Data under named slots.
type Store interface {
	Save(ctx context.Context, slot string, d *Data) error
	Load(ctx context.Context, slot string) (*Data, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, slot string) error
}

// MarshalPayload encodes d as JSON, stamping the current Version.
func MarshalPayload(d *Data) ([]byte, error) {
	d.Version = Version
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encoding save: %w", err)
	}
	return b, nil
}

// UnmarshalPayload decodes a JSON payload, rejecting any version newer than Version
// before the body is interpreted.
//
// Postcondition: Returns a Data with Version <= save.Version or a non-nil error.
func UnmarshalPayload(b []byte) (*Data, error) {
	var head struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, fmt.Errorf("decoding save header: %w", err)
	}
	if head.Version > Version {
		return nil, fmt.Errorf("%w: got %d, support up to %d", ErrFutureVersion, head.Version, Version)
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}
	return &d, nil
}

type envelope struct {
	Checksum string          `json:"checksum"`
	Payload  json.RawMessage `json:"payload"`
}

// Seal wraps d in a checksummed envelope for file storage.
func Seal(d *Data) ([]byte, error) {
	payload, err := MarshalPayload(d)
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(payload)
	return json.Marshal(envelope{Checksum: hex.EncodeToString(sum[:]), Payload: payload})
}

// Open verifies an envelope produced by Seal and decodes its payload.
func Open(b []byte) (*Data, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decoding save envelope: %w", err)
	}
	sum := blake2b.Sum256(env.Payload)
	if hex.EncodeToString(sum[:]) != env.Checksum {
		return nil, ErrChecksum
	}
	return UnmarshalPayload(env.Payload)
}
