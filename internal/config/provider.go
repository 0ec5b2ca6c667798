package config

import (
	"fmt"

	"github.com/footprint-tools/consoleapp/internal/domain"
)

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set writes key=value to the dotfile under the config lock.
func (p *Provider) Set(key, value string) (bool, error) {
	var updated bool
	err := WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, updated = Set(lines, key, value)
		return WriteLines(lines)
	})
	if err != nil {
		return false, fmt.Errorf("set %s: %w", key, err)
	}
	return updated, nil
}

// Unset removes key from the dotfile under the config lock.
func (p *Provider) Unset(key string) (bool, error) {
	var removed bool
	err := WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		lines, removed = Unset(lines, key)
		return WriteLines(lines)
	})
	if err != nil {
		return false, fmt.Errorf("unset %s: %w", key, err)
	}
	return removed, nil
}

// Clear removes every entry from the dotfile. Defaults still apply afterwards.
func (p *Provider) Clear() error {
	err := WithLock(func() error {
		return WriteLines([]string{})
	})
	if err != nil {
		return fmt.Errorf("unset --all: %w", err)
	}
	return nil
}

var _ domain.ConfigProvider = (*Provider)(nil)
