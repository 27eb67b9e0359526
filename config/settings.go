package config

import (
	"fmt"
	"sort"

	"github.com/kbukum/idkit/idp"
	"github.com/kbukum/idkit/logger"
)

// Settings is the full configuration surface of an idkit integration.
type Settings struct {
	// Logging configures the structured logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// Providers maps provider id to its caller-supplied configuration.
	Providers map[string]idp.UserConfig `yaml:"providers" mapstructure:"providers"`

	// APIDomains maps provider id to a deployment-specific API domain,
	// for provider kinds that derive endpoints from one. Missing entries
	// fall back to the kind's baked-in production default.
	APIDomains map[string]string `yaml:"api_domains" mapstructure:"api_domains"`
}

// ApplyDefaults applies default values.
func (s *Settings) ApplyDefaults() {
	s.Logging.ApplyDefaults()
	if s.Providers == nil {
		s.Providers = make(map[string]idp.UserConfig)
	}
	if s.APIDomains == nil {
		s.APIDomains = make(map[string]string)
	}
}

// Validate checks the logging configuration and every provider entry.
// Provider errors are reported together with the offending provider id
// so a single bad entry is easy to locate.
func (s *Settings) Validate() error {
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("settings.logging: %w", err)
	}
	for _, id := range s.ProviderIDs() {
		if err := s.Providers[id].Validate(); err != nil {
			return fmt.Errorf("settings.providers[%s]: %w", id, err)
		}
	}
	return nil
}

// ProviderIDs returns the configured provider ids in sorted order.
func (s *Settings) ProviderIDs() []string {
	ids := make([]string, 0, len(s.Providers))
	for id := range s.Providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
