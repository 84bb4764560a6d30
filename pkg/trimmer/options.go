// 15 Oct 2026
// Options for manual trimming. They can come from a settings file or
// the environment, through viper.

package trimmer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/andrew-torda/msatrim/pkg/align"
)

// ManualOptions are the thresholds for manual trimming. A nil field
// is not set and is not passed on. Whether a threshold is inclusive
// and which option wins when they disagree is up to the engine.
type ManualOptions struct {
	// drop columns with more than this fraction of gaps, 0 to 1
	GapThreshold *float64 `mapstructure:"gap-threshold"`

	// drop columns with more than this number of gaps
	GapAbsoluteThreshold *int `mapstructure:"gap-absolute-threshold"`

	// drop columns scoring below this similarity, 0 to 1
	SimilarityThreshold *float64 `mapstructure:"similarity-threshold"`

	// drop columns scoring below this consistency, 0 to 1
	ConsistencyThreshold *float64 `mapstructure:"consistency-threshold"`

	// keep at least this percentage of columns, 0 to 100
	ConservationPercentage *float64 `mapstructure:"conservation-percentage"`

	// half window size, applied to every metric
	Window *int `mapstructure:"window"`

	// half window sizes for each metric. Cannot be used with Window.
	GapWindow         *int `mapstructure:"gap-window"`
	SimilarityWindow  *int `mapstructure:"similarity-window"`
	ConsistencyWindow *int `mapstructure:"consistency-window"`
}

// envPrefix goes in front of environment variables, as in
// MSATRIM_GAP_THRESHOLD.
const envPrefix = "MSATRIM"

var optionKeys = []string{
	"gap-threshold", "gap-absolute-threshold", "similarity-threshold",
	"consistency-threshold", "conservation-percentage",
	"window", "gap-window", "similarity-window", "consistency-window",
}

// LoadManualOptions reads options from a settings file, if path is not
// empty, and from MSATRIM_ environment variables, which win. A file
// with no extension is taken to be yaml. Unknown keys are an error.
func LoadManualOptions(path string) (ManualOptions, error) {
	var o ManualOptions
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, k := range optionKeys {
		if err := v.BindEnv(k); err != nil {
			return o, err
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return o, fmt.Errorf("reading trimming options %s: %w", path, err)
		}
	}
	if err := v.UnmarshalExact(&o); err != nil {
		return o, fmt.Errorf("decoding trimming options: %v: %w", err, align.ErrValue)
	}
	return o, o.Validate()
}

func inRange(name string, x *float64, lo, hi float64) error {
	if x != nil && !(*x >= lo && *x <= hi) { // NaN fails too
		return fmt.Errorf("%s %g not in [%g, %g]: %w", name, *x, lo, hi, align.ErrValue)
	}
	return nil
}

func notNegative(name string, n *int) error {
	if n != nil && *n < 0 {
		return fmt.Errorf("%s %d is negative: %w", name, *n, align.ErrValue)
	}
	return nil
}

// Validate checks each option on its own, plus the two combinations
// which can never make sense.
func (o ManualOptions) Validate() error {
	checks := []error{
		inRange("gap threshold", o.GapThreshold, 0, 1),
		inRange("similarity threshold", o.SimilarityThreshold, 0, 1),
		inRange("consistency threshold", o.ConsistencyThreshold, 0, 1),
		inRange("conservation percentage", o.ConservationPercentage, 0, 100),
		notNegative("gap absolute threshold", o.GapAbsoluteThreshold),
		notNegative("window", o.Window),
		notNegative("gap window", o.GapWindow),
		notNegative("similarity window", o.SimilarityWindow),
		notNegative("consistency window", o.ConsistencyWindow),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if o.GapThreshold != nil && o.GapAbsoluteThreshold != nil {
		return fmt.Errorf("gap threshold and gap absolute threshold both set: %w", align.ErrValue)
	}
	if o.Window != nil && (o.GapWindow != nil || o.SimilarityWindow != nil || o.ConsistencyWindow != nil) {
		return fmt.Errorf("window cannot be combined with a specific window: %w", align.ErrValue)
	}
	return nil
}

// clone copies the pointed-to values, so nobody can change a
// trimmer's options from outside.
func (o ManualOptions) clone() ManualOptions {
	f := func(x *float64) *float64 {
		if x == nil {
			return nil
		}
		y := *x
		return &y
	}
	n := func(x *int) *int {
		if x == nil {
			return nil
		}
		y := *x
		return &y
	}
	return ManualOptions{
		GapThreshold:           f(o.GapThreshold),
		GapAbsoluteThreshold:   n(o.GapAbsoluteThreshold),
		SimilarityThreshold:    f(o.SimilarityThreshold),
		ConsistencyThreshold:   f(o.ConsistencyThreshold),
		ConservationPercentage: f(o.ConservationPercentage),
		Window:                 n(o.Window),
		GapWindow:              n(o.GapWindow),
		SimilarityWindow:       n(o.SimilarityWindow),
		ConsistencyWindow:      n(o.ConsistencyWindow),
	}
}

// String lists the options which are set, in the same names as the
// settings file.
func (o ManualOptions) String() string {
	var parts []string
	fl := func(k string, x *float64) {
		if x != nil {
			parts = append(parts, fmt.Sprintf("%s=%g", k, *x))
		}
	}
	in := func(k string, n *int) {
		if n != nil {
			parts = append(parts, fmt.Sprintf("%s=%d", k, *n))
		}
	}
	fl("gap-threshold", o.GapThreshold)
	in("gap-absolute-threshold", o.GapAbsoluteThreshold)
	fl("similarity-threshold", o.SimilarityThreshold)
	fl("consistency-threshold", o.ConsistencyThreshold)
	fl("conservation-percentage", o.ConservationPercentage)
	in("window", o.Window)
	in("gap-window", o.GapWindow)
	in("similarity-window", o.SimilarityWindow)
	in("consistency-window", o.ConsistencyWindow)
	return "{" + strings.Join(parts, " ") + "}"
}

// Float and Int make pointers for literals, as in
// ManualOptions{GapThreshold: trimmer.Float(0.9)}.
func Float(x float64) *float64 { return &x }

func Int(n int) *int { return &n }
