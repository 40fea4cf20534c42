package askbook_test

import (
	"testing"

	"github.com/hnasir/askbook"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, askbook.DarkTheme(), askbook.DefaultTheme())
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, askbook.DarkTheme(), askbook.ThemeFor(true))
	assert.Equal(t, askbook.LightTheme(), askbook.ThemeFor(false))
	assert.NotEqual(t, askbook.DarkTheme(), askbook.LightTheme())
}
