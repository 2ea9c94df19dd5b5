package fontcss

import (
	"fmt"
	"strings"
)

// RenderRule formats a single @font-face block. Every block is followed
// by a trailing blank line so consecutive blocks stay separated.
func RenderRule(rule Rule) string {
	var b strings.Builder
	b.WriteString("@font-face {\n")
	fmt.Fprintf(&b, "    font-family: '%s';\n", rule.Family)
	fmt.Fprintf(&b, "    src: url('%s') format('%s');\n", rule.URL, rule.Format)
	b.WriteString("}\n")
	return b.String()
}

// RenderStylesheet concatenates all rule blocks, blank line between blocks.
func RenderStylesheet(rules []Rule) string {
	blocks := make([]string, 0, len(rules))
	for _, rule := range rules {
		blocks = append(blocks, RenderRule(rule))
	}
	return strings.Join(blocks, "\n")
}
