// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
)

// Config is the declarative form of New's arguments, for embedding systems
// that load settings from files or the environment.
//
//	rows: 943
//	cols: 1682
//	merge_policy: add       # add | overwrite
//	validate_nan_inf: true
type Config struct {
	Rows           int    `mapstructure:"rows" validate:"gte=0"`
	Cols           int    `mapstructure:"cols" validate:"gte=0"`
	MergePolicy    string `mapstructure:"merge_policy" validate:"omitempty,oneof=add overwrite"`
	ValidateNaNInf *bool  `mapstructure:"validate_nan_inf"`
}

var configValidator = validator.New()

// DecodeConfig decodes a generic key/value tree (as produced by YAML, TOML or
// viper) into a Config and validates it. Unknown keys are rejected.
func DecodeConfig(raw map[string]any) (Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, errors.Trace(err)
	}
	if err = decoder.Decode(raw); err != nil {
		return Config{}, errors.Annotate(fmt.Errorf("%w: %v", ErrBadConfig, err), "decode sparse config")
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, errors.Trace(err)
	}

	return cfg, nil
}

// Validate checks field constraints: non-negative shape, known merge policy.
func (cfg Config) Validate() error {
	if err := configValidator.Struct(cfg); err != nil {
		return errors.Annotate(fmt.Errorf("%w: %v", ErrBadConfig, err), "validate sparse config")
	}
	return nil
}

// Options converts the policy fields into functional options.
func (cfg Config) Options() ([]Option, error) {
	policy, err := ParseMergePolicy(cfg.MergePolicy)
	if err != nil {
		return nil, errors.Trace(err)
	}
	opts := []Option{WithMergePolicy(policy)}
	if cfg.ValidateNaNInf != nil {
		opts = append(opts, WithValidateNaNInf(*cfg.ValidateNaNInf))
	}

	return opts, nil
}

// NewFromConfig validates cfg and builds an empty matrix from it.
// extra options are applied after the config-derived ones, so they win.
func NewFromConfig[T Rating](cfg Config, extra ...Option) (*Matrix[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return New[T](cfg.Rows, cfg.Cols, append(opts, extra...)...)
}
