package cli

import (
	"fmt"

	"plasmaclean/internal/model"
)

// Validate checks assembled options for values the animation loop cannot
// work with.
func Validate(opts model.Options) error {
	if opts.Period <= 0 {
		return fmt.Errorf("invalid --period-ms: must be positive, got %v", opts.Period)
	}
	if opts.BarFraction <= 0 || opts.BarFraction >= 1 {
		return fmt.Errorf("invalid --bar-fraction: %v (valid: between 0 and 1, exclusive)", opts.BarFraction)
	}
	if opts.SuppressInterval <= 0 {
		return fmt.Errorf("invalid --suppress-interval-ms: must be positive, got %v", opts.SuppressInterval)
	}
	if opts.Duration < 0 {
		return fmt.Errorf("invalid --duration: must not be negative, got %v", opts.Duration)
	}
	return nil
}
