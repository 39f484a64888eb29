// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final [GatewayConfig] satisfies all invariants
// before it is used at startup. Each configuration group is validated on its
// own so the returned error names the offending group.
func (cfg *GatewayConfig) validate() error {
	groups := []struct {
		value any
		err   error
	}{
		{cfg.App, ErrInvalidAppConfigs},
		{cfg.Backend, ErrInvalidBackendConfigs},
		{cfg.Server, ErrInvalidServerConfigs},
		{cfg.Session, ErrInvalidSessionConfigs},
	}

	for _, g := range groups {
		if err := validate.Struct(g.value); err != nil {
			return fmt.Errorf("%w: %w", g.err, err)
		}
	}

	return nil
}
