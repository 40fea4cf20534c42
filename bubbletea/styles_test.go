package bubbletea_test

import (
	"testing"

	"github.com/hnasir/askbook"
	bt "github.com/hnasir/askbook/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(askbook.DefaultTheme())

	// Styles must at least pass text through unchanged.
	assert.Contains(t, styles.UserMsg.Render("You:"), "You:")
	assert.Contains(t, styles.Error.Render("err"), "err")
	assert.Contains(t, styles.Muted.Render("hint"), "hint")
	assert.Contains(t, styles.Accent.Render("title"), "title")
}
