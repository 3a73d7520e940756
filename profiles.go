package flog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dangolsanat/FLog/internal/rest"
	"github.com/dangolsanat/FLog/internal/types"
)

// ProfileManager lazily creates and caches the one profile row that exists
// per device identifier.
type ProfileManager struct {
	client *Client

	mu      sync.Mutex
	current *DeviceProfile
}

// NewProfileManager constructs a ProfileManager over client.
func NewProfileManager(client *Client) *ProfileManager {
	return &ProfileManager{client: client}
}

// Current returns the cached profile, or nil before Ensure has succeeded.
func (m *ProfileManager) Current() *DeviceProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	p := *m.current
	return &p
}

// Ensure loads the device's profile row, creating it on first launch. The
// auto-generated username is "user_" plus the first 8 characters of the
// device id; if that insert fails (typically a username collision) one
// retry is made with a random suffix. When the row already exists its
// last_active timestamp is refreshed best-effort.
func (m *ProfileManager) Ensure(ctx context.Context) (*DeviceProfile, error) {
	deviceID := m.client.DeviceID()
	if deviceID == "" {
		return nil, ErrDeviceIDNotAvailable
	}

	m.mu.Lock()
	if m.current != nil {
		p := *m.current
		m.mu.Unlock()
		return &p, nil
	}
	m.mu.Unlock()

	existing, err := rest.GetProfile(ctx, m.client.rest, deviceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := rest.TouchProfile(ctx, m.client.rest, deviceID, time.Now().UTC()); err != nil {
			log.Debug().Err(err).Msg("last_active refresh failed")
		}
		m.store(existing)
		return existing, nil
	}

	profile := types.DeviceProfile{
		ID:        deviceID,
		Username:  "user_" + prefix8(deviceID),
		CreatedAt: time.Now().UTC(),
	}
	created, err := rest.CreateProfile(ctx, m.client.rest, profile)
	if err != nil {
		log.Debug().Err(err).Msg("profile insert failed, retrying with random username")
		profile.Username = "user_" + prefix8(uuid.NewString())
		created, err = rest.CreateProfile(ctx, m.client.rest, profile)
		if err != nil {
			return nil, err
		}
	}
	m.store(created)
	return created, nil
}

func (m *ProfileManager) store(p *DeviceProfile) {
	m.mu.Lock()
	m.current = p
	m.mu.Unlock()
}

func prefix8(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
