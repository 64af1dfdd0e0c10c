package config_test

import (
	"strings"
	"testing"

	"github.com/dasdy/foamslides/config"
	"github.com/dasdy/foamslides/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readConfig(t *testing.T, content string) *viper.Viper {
	t.Helper()

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))

	return v
}

func TestLoadTheme(t *testing.T) {
	t.Run("defaults without a theme table", func(t *testing.T) {
		theme, err := config.LoadTheme(readConfig(t, `port = 9000`))

		require.NoError(t, err)
		assert.Equal(t, model.DefaultTheme(), theme)
	})

	t.Run("overrides only the given fields", func(t *testing.T) {
		theme, err := config.LoadTheme(readConfig(t, `
[theme]
main = "#FF0000"
buff = 0.5

[theme.sizes]
big = 30

[theme.code]
style = "manni"
`))

		require.NoError(t, err)

		expected := model.DefaultTheme()
		expected.Main = "#FF0000"
		expected.Buff = 0.5
		expected.Sizes.Big = 30

		assert.Equal(t, expected, theme)
	})

	t.Run("rejects an invalid theme", func(t *testing.T) {
		_, err := config.LoadTheme(readConfig(t, `
[theme.metrics]
points_per_unit = 0
`))

		require.ErrorIs(t, err, model.ErrInvalidTheme)
	})

	t.Run("rejects values of the wrong type", func(t *testing.T) {
		_, err := config.LoadTheme(readConfig(t, `
[theme]
buff = "wide"
`))

		require.Error(t, err)
	})
}
