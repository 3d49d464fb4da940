package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Header", "Warning", "Dependency", "Required", "Project", "Missing"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be registered", name)
	}
	assert.True(t, GetStyle("Dependency").GetBold())
	assert.True(t, GetStyle("Missing").GetItalic())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	err := LoadStylesFromData([]byte("styles: [unclosed"))
	assert.Error(t, err)
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestRender_KeepsText(t *testing.T) {
	assert.Contains(t, Render("Dependency", "react"), "react")
}
