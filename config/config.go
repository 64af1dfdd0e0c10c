// Package config reads deck settings from viper.
package config

import (
	"fmt"

	"github.com/dasdy/foamslides/model"
	"github.com/spf13/viper"
)

const themeKey = "theme"

// LoadTheme starts from the default theme and applies the overrides found
// under the "theme" table.
func LoadTheme(v *viper.Viper) (model.Theme, error) {
	theme := model.DefaultTheme()

	if v.IsSet(themeKey) {
		if err := v.UnmarshalKey(themeKey, &theme); err != nil {
			return model.Theme{}, fmt.Errorf("could not decode theme: %w", err)
		}
	}

	if err := theme.Validate(); err != nil {
		return model.Theme{}, err
	}

	return theme, nil
}
