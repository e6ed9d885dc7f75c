// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/sui-dapp/models/sui"
)

// Validate checks every configuration value and returns all problems at
// once.
func (c Config) Validate() error {

	validate := validator.New()
	err := validate.RegisterValidation("sui_address", suiAddress)
	if err != nil {
		return fmt.Errorf("could not register address validation: %w", err)
	}
	err = validate.RegisterValidation("move_target", moveTarget)
	if err != nil {
		return fmt.Errorf("could not register target validation: %w", err)
	}

	var errs *multierror.Error

	err = validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			errs = multierror.Append(errs, fmt.Errorf("invalid value for %s (rule: %s, value: %v)", verr.Namespace(), verr.Tag(), verr.Value()))
		}
	} else if err != nil {
		errs = multierror.Append(errs, err)
	}

	_, ok := c.Network.Endpoints[c.Network.Active]
	if c.Network.Active != "" && !ok {
		errs = multierror.Append(errs, fmt.Errorf("active network %q has no endpoint", c.Network.Active))
	}

	return errs.ErrorOrNil()
}

func suiAddress(fl validator.FieldLevel) bool {
	_, err := sui.ParseAddress(fl.Field().String())
	return err == nil
}

func moveTarget(fl validator.FieldLevel) bool {
	_, err := sui.ParseMoveTarget(fl.Field().String())
	return err == nil
}
