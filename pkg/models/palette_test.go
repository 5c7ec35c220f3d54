package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForColor(t *testing.T) {
	red := StyleForColor("red")
	assert.Equal(t, "#eb5a46", red.Background)
	assert.Equal(t, "#ffffff", red.Foreground)

	// Unknown and empty tags resolve to the same neutral style.
	neutral := StyleForColor("")
	assert.Equal(t, "#dfe1e6", neutral.Background)
	assert.Equal(t, neutral, StyleForColor("chartreuse"))
}
