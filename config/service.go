package config

import (
	"github.com/google/uuid"

	"github.com/kbukum/seqkit/inspect"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

// Environments accepted in ServiceConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// ServiceConfig is the configuration of a program built on seqkit. Programs
// with more settings embed it:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Input string         `yaml:"input" mapstructure:"input"`
//	}
//
// RunID correlates the logs and traces of one process run; a random one is
// assigned when unset.
type ServiceConfig struct {
	Name        string               `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string               `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string               `yaml:"version" mapstructure:"version"`
	RunID       string               `yaml:"run_id" mapstructure:"run_id"`
	Logging     logger.Config        `yaml:"logging" mapstructure:"logging"`
	Inspect     inspect.Config       `yaml:"inspect" mapstructure:"inspect"`
	Telemetry   observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// GetServiceConfig returns the base ServiceConfig. It is promoted to structs
// embedding ServiceConfig.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults fills unset fields. Development runs log at debug level
// unless a level is configured.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.RunID == "" {
		c.RunID = uuid.NewString()
	}
	if c.Logging.Level == "" && c.Environment == EnvDevelopment {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
	c.Inspect.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks the struct tags of every section plus the checks tags
// cannot express. All field errors are reported together.
func (c *ServiceConfig) Validate() error {
	return validation.New().
		Merge("config", validation.Validate(c)).
		OptionalUUID("run_id", c.RunID).
		Merge("logging", c.Logging.Validate()).
		Err()
}

// LoadService loads, defaults and validates a ServiceConfig.
func LoadService(serviceName string, opts ...LoaderOption) (*ServiceConfig, error) {
	cfg := &ServiceConfig{Name: serviceName}
	if err := Load(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
