// Package config loads program configuration with Viper.
//
// Values come from a YAML file, a .env file and the process environment,
// in increasing precedence. Files are found in standard locations
// (./cmd/<name>/config.yml, ./config/config.yml, ./config.yml and the
// matching .env files) unless given explicitly:
//
//	cfg, err := config.LoadService("seqdemo",
//	    config.WithConfigFile("config.yml"),
//	    config.WithEnvPrefix("SEQ"),
//	)
//
// With the SEQ prefix, SEQ_INSPECT_LIMIT=50 sets inspect.limit. Each
// underscore in a variable name may stand for a nesting level or for an
// underscore inside a key, so SEQ_TELEMETRY_SAMPLE_RATE reaches
// telemetry.sample_rate.
package config
