// Package validation checks configuration and user input, returning
// errors.AppError values with per-field details.
//
// Struct tag validation uses go-playground/validator:
//
//	type Config struct {
//	    Limit int `validate:"gte=0,lte=1000"`
//	}
//	err := validation.Validate(cfg)
//
// Checks that need code collect into a Validator:
//
//	v := validation.New()
//	v.OptionalUUID("run_id", cfg.RunID)
//	err := v.Err()
package validation
