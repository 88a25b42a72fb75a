// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/siurna/uzkuraitis-eu/models"
)

const settingFinalResults = models.SettingFinalResults

// GetSetting returns the value stored under key and whether it exists.
func (s *Store) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM setting WHERE key = $1
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting upserts a setting.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO setting (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, now())
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// getBool reads a "true"/"false" setting, returning def when unset.
func (s *Store) getBool(ctx context.Context, key string, def bool) (bool, error) {
	value, ok, err := s.GetSetting(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	return value == "true", nil
}

func (s *Store) setBool(ctx context.Context, key string, v bool) error {
	value := "false"
	if v {
		value = "true"
	}
	return s.SetSetting(ctx, key, value)
}

// VotingEnabled defaults to true until an admin disables voting.
func (s *Store) VotingEnabled(ctx context.Context) (bool, error) {
	return s.getBool(ctx, models.SettingVotingEnabled, true)
}

func (s *Store) SetVotingEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, models.SettingVotingEnabled, enabled)
}

// ShowAdminButton defaults to true.
func (s *Store) ShowAdminButton(ctx context.Context) (bool, error) {
	return s.getBool(ctx, models.SettingShowAdminButton, true)
}

func (s *Store) SetShowAdminButton(ctx context.Context, show bool) error {
	return s.setBool(ctx, models.SettingShowAdminButton, show)
}

// AdminPassword returns the stored admin password, or fallback when none
// has been set through the settings endpoint.
func (s *Store) AdminPassword(ctx context.Context, fallback string) (string, error) {
	value, ok, err := s.GetSetting(ctx, models.SettingAdminPassword)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return fallback, nil
	}
	return value, nil
}

func (s *Store) SetAdminPassword(ctx context.Context, password string) error {
	return s.SetSetting(ctx, models.SettingAdminPassword, password)
}

// FetchResults returns the results record, or nil if none has been saved.
func (s *Store) FetchResults(ctx context.Context) (*models.ResultsRecord, error) {
	value, ok, err := s.GetSetting(ctx, settingFinalResults)
	if err != nil || !ok {
		return nil, err
	}

	var rec models.ResultsRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	return &rec, nil
}

// SaveResults replaces the results record.
func (s *Store) SaveResults(ctx context.Context, rec models.ResultsRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return s.SetSetting(ctx, settingFinalResults, string(data))
}
