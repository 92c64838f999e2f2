package color_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		input    string
		expected color.Color
	}{
		{"Red", color.Red},
		{"blue", color.Blue},
		{" GREEN ", color.Green},
		{"y", color.Yellow},
		{"R", color.Red},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.input, func(t *testing.T) {
			chosen, err := color.ByName(scenario.input)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, chosen)
		})
	}
}

func TestByNameRejectsUnknownColors(t *testing.T) {
	for _, input := range []string{"", "purple", "wild", "w"} {
		_, err := color.ByName(input)
		require.Error(t, err, input)
	}
}

func TestReal(t *testing.T) {
	for _, c := range color.All {
		require.True(t, color.Real(c))
	}
	require.False(t, color.Real(color.Wild))
	require.False(t, color.Real(nil))
}

func TestAllOrder(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Blue, color.Green, color.Yellow}, color.All)
}
