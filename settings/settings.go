// Package settings holds the nested preference tree. Each group has a fixed
// schema; unrecognized (group, key) pairs are rejected at the store boundary.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gigglesgo/kv"
	"gigglesgo/notify"
	"gigglesgo/structs"
)

// Keys used against the durable key-value collaborator. Everything else in
// the store is session-only.
const (
	ThemeKey           = "giggles-theme"
	CulturalVariantKey = "giggles-cultural-variant"

	defaultTheme   = "light"
	defaultVariant = "standard"
)

var languages = map[string]bool{"english": true, "spanish": true, "creole": true}

type kind int

const (
	boolKind kind = iota
	languageKind
)

// schema is the full recognized key set; anything outside it is an invalid
// setting.
var schema = map[string]map[string]kind{
	"notifications": {
		"pushNotifications":  boolKind,
		"emailNotifications": boolKind,
		"eventReminders":     boolKind,
		"newEvents":          boolKind,
		"weeklyDigest":       boolKind,
	},
	"privacy": {
		"locationServices": boolKind,
		"shareActivity":    boolKind,
		"publicProfile":    boolKind,
	},
	"app": {
		"darkMode":     boolKind,
		"language":     languageKind,
		"autoPlay":     boolKind,
		"soundEffects": boolKind,
	},
}

type Store struct {
	mu      sync.Mutex
	current structs.Settings
	kv      kv.Store
	banners *notify.Queue
}

func NewStore(store kv.Store, banners *notify.Queue) *Store {
	return &Store{
		current: structs.DefaultSettings(),
		kv:      store,
		banners: banners,
	}
}

// Update sets one leaf. The (group, key) pair must be part of the fixed
// schema and the value must match the leaf's type; otherwise nothing changes
// and an InvalidSettingError is returned.
func (s *Store) Update(group, key string, value any) error {
	keys, ok := schema[group]
	if !ok {
		return &structs.InvalidSettingError{Group: group, Key: key}
	}
	k, ok := keys[key]
	if !ok {
		return &structs.InvalidSettingError{Group: group, Key: key}
	}

	switch k {
	case boolKind:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("setting %s.%s wants a boolean", group, key)
		}
		s.setBool(group, key, b)
	case languageKind:
		lang, ok := value.(string)
		if !ok || !languages[lang] {
			return fmt.Errorf("setting %s.%s wants one of english, spanish, creole", group, key)
		}
		s.mu.Lock()
		s.current.App.Language = lang
		s.mu.Unlock()
	}

	s.banners.Push(notify.BannerGeneral, "Settings", "Settings updated successfully!")
	return nil
}

func (s *Store) setBool(group, key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch group + "." + key {
	case "notifications.pushNotifications":
		s.current.Notifications.PushNotifications = value
	case "notifications.emailNotifications":
		s.current.Notifications.EmailNotifications = value
	case "notifications.eventReminders":
		s.current.Notifications.EventReminders = value
	case "notifications.newEvents":
		s.current.Notifications.NewEvents = value
	case "notifications.weeklyDigest":
		s.current.Notifications.WeeklyDigest = value
	case "privacy.locationServices":
		s.current.Privacy.LocationServices = value
	case "privacy.shareActivity":
		s.current.Privacy.ShareActivity = value
	case "privacy.publicProfile":
		s.current.Privacy.PublicProfile = value
	case "app.darkMode":
		s.current.App.DarkMode = value
	case "app.autoPlay":
		s.current.App.AutoPlay = value
	case "app.soundEffects":
		s.current.App.SoundEffects = value
	}
}

func (s *Store) Snapshot() structs.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Theme reads the persisted theme preference. A missing key or an unreachable
// collaborator falls back to the default.
func (s *Store) Theme(ctx context.Context) string {
	val, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		return defaultTheme
	}
	return val
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if err := s.kv.Set(ctx, ThemeKey, theme); err != nil {
		return &structs.CollaboratorError{Op: "persist theme", Err: err}
	}
	return nil
}

func (s *Store) CulturalVariant(ctx context.Context) string {
	val, err := s.kv.Get(ctx, CulturalVariantKey)
	if err != nil {
		return defaultVariant
	}
	return val
}

func (s *Store) SetCulturalVariant(ctx context.Context, variant string) error {
	if err := s.kv.Set(ctx, CulturalVariantKey, variant); err != nil {
		return &structs.CollaboratorError{Op: "persist cultural variant", Err: err}
	}
	return nil
}

// IsInvalidSetting reports whether err is the schema rejection.
func IsInvalidSetting(err error) bool {
	var ise *structs.InvalidSettingError
	return errors.As(err, &ise)
}
