package config

import (
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Store persists Settings through a gdata manager. A Store without a manager
// keeps settings in memory only and never fails to save.
type Store struct {
	manager  *gdata.Manager
	settings Settings
	logger   *slog.Logger
}

// OpenStore opens the per-user data directory for appName and loads any
// previously saved settings.
func OpenStore(appName string, logger *slog.Logger) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	return NewStore(manager, logger), nil
}

// NewStore wraps manager, which may be nil. A failed load is logged and the
// defaults are used.
func NewStore(manager *gdata.Manager, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	st := &Store{
		manager:  manager,
		settings: Default(),
		logger:   logger,
	}
	if err := st.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "error", err)
	}
	return st
}

// Load replaces the in-memory settings with the persisted copy.
func (st *Store) Load() error {
	if st.manager == nil {
		st.settings = Default()
		return nil
	}
	if !st.manager.ObjectPropExists(settingsObject, settingsProperty) {
		st.settings = Default()
		return nil
	}

	data, err := st.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		st.settings = Default()
		return fmt.Errorf("failed to load settings: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		st.settings = Default()
		return err
	}

	st.settings = s
	st.logger.Debug("settings loaded")
	return nil
}

// Save writes the in-memory settings.
func (st *Store) Save() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := st.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	st.logger.Debug("settings saved")
	return nil
}

// Settings returns the current settings.
func (st *Store) Settings() Settings {
	return st.settings
}

// Update validates s and makes it current. It is not saved until Save.
func (st *Store) Update(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	st.settings = s
	return nil
}

// Persistent reports whether settings survive a restart.
func (st *Store) Persistent() bool {
	return st.manager != nil
}
