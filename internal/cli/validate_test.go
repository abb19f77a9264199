package cli

import (
	"testing"
	"time"

	"plasmaclean/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Options)
		wantErr bool
	}{
		{"defaults", func(*model.Options) {}, false},
		{"zero period", func(o *model.Options) { o.Period = 0 }, true},
		{"negative period", func(o *model.Options) { o.Period = -time.Second }, true},
		{"fraction zero", func(o *model.Options) { o.BarFraction = 0 }, true},
		{"fraction one", func(o *model.Options) { o.BarFraction = 1 }, true},
		{"fraction above one", func(o *model.Options) { o.BarFraction = 1.5 }, true},
		{"half fraction", func(o *model.Options) { o.BarFraction = 0.5 }, false},
		{"zero suppress interval", func(o *model.Options) { o.SuppressInterval = 0 }, true},
		{"negative duration", func(o *model.Options) { o.Duration = -time.Minute }, true},
		{"bounded session", func(o *model.Options) { o.Duration = 30 * time.Minute }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := model.Default()
			tt.mutate(&opts)
			err := Validate(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
