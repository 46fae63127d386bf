package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_SelectBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches(" ", km.Select))
	assert.Equal(t, "space", km.Select.Help().Key)
}

func TestDefaultKeyMap_ResetAndRefetchAreCaseSensitive(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("r", km.Reset))
	assert.False(t, Matches("R", km.Reset))
	assert.True(t, Matches("R", km.Refetch))
	assert.False(t, Matches("r", km.Refetch))
}

func TestDefaultKeyMap_Navigation(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.Top.Keys(), "g")
	assert.Contains(t, km.Bottom.Keys(), "G")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 5)
	assert.Equal(t, km.Select.Help(), help[0].Help())
	assert.Equal(t, km.Quit.Help(), help[len(help)-1].Help())
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 12, total)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("a", "b"))

	assert.True(t, Matches("a", binding))
	assert.True(t, Matches("b", binding))
	assert.False(t, Matches("c", binding))
}
