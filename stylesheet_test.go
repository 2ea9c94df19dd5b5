package fontcss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderRule(t *testing.T) {
	rule := Rule{
		Family: "Roboto-0",
		URL:    "web/fonts/Roboto/Roboto-Regular.ttf",
		Format: "truetype",
	}

	want := "@font-face {\n" +
		"    font-family: 'Roboto-0';\n" +
		"    src: url('web/fonts/Roboto/Roboto-Regular.ttf') format('truetype');\n" +
		"}\n"
	require.Equal(t, want, RenderRule(rule))
}

func TestRenderStylesheet_BlankLineBetweenBlocks(t *testing.T) {
	rules := []Rule{
		{Family: "A-0", URL: "fonts/A/a.ttf", Format: "truetype"},
		{Family: "B-0", URL: "fonts/B/b.woff2", Format: "woff2"},
	}

	got := RenderStylesheet(rules)
	require.Contains(t, got, "}\n\n@font-face {")
	require.True(t, len(got) > 0 && got[len(got)-1] == '\n')
	// No trailing blank line after the last block
	require.NotRegexp(t, `\n\n$`, got)
}

func TestRenderStylesheet_Empty(t *testing.T) {
	require.Equal(t, "", RenderStylesheet(nil))
}
