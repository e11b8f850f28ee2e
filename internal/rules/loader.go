package rules

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a YAML rules file. An empty path returns the compiled-in
// defaults. The file replaces the defaults wholesale; partial overrides are
// deliberately unsupported so a rules file is always a complete, reviewable
// statement of the tables in force.
func Load(path string) (*Rules, []string, error) {
	if path == "" {
		r := Default()
		warnings, err := r.Validate()
		return r, warnings, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("error reading rules file, %s", err)
	}

	var r Rules
	if err := v.Unmarshal(&r); err != nil {
		return nil, nil, fmt.Errorf("unable to decode rules into struct, %s", err)
	}

	warnings, err := r.Validate()
	if err != nil {
		return nil, warnings, fmt.Errorf("rules file %s failed validation: %w", path, err)
	}
	return &r, warnings, nil
}
