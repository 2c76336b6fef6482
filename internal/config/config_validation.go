// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Broker.URL == "" || cfg.Broker.Queue == "" {
		return ErrInvalidBrokerConfigs
	}

	if cfg.Broker.ConnectAttempts == 0 || cfg.Broker.ConnectBackoff <= 0 {
		return ErrInvalidBrokerConfigs
	}

	return nil
}
