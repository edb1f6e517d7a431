package cali

import (
	"fmt"
	"strings"

	"github.com/pressly/cali/internal/textutil"
)

// DefaultUsage returns help text listing every flag registered on p, in registration order. usage
// is the usage pattern shown first, e.g. "echo [flags]"; it is omitted when empty.
//
// Each flag is rendered as its [FlagDefinition.String] form followed by the description, wrapped
// to fit 80 columns, and the default value if one is set.
func DefaultUsage(p *Parser, usage string) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	if usage != "" {
		b.WriteString("Usage:\n")
		b.WriteString("  " + usage + "\n\n")
	}

	defs := p.Definitions()
	if len(defs) > 0 {
		names := make([]string, len(defs))
		maxNameLen := 0
		for i := range defs {
			names[i] = defs[i].String()
			maxNameLen = max(maxNameLen, len(names[i]))
		}

		nameWidth := maxNameLen + 4
		wrapWidth := 80 - nameWidth - 2

		b.WriteString("Flags:\n")
		for i := range defs {
			description := defs[i].description
			if defs[i].defaultValue != "" {
				description += fmt.Sprintf(" (default: %s)", defs[i].defaultValue)
			}
			if description == "" {
				fmt.Fprintf(&b, "  %s\n", names[i])
				continue
			}

			lines := textutil.Wrap(description, wrapWidth)
			padding := strings.Repeat(" ", maxNameLen-len(names[i])+4)
			fmt.Fprintf(&b, "  %s%s%s\n", names[i], padding, lines[0])

			indentPadding := strings.Repeat(" ", nameWidth+2)
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
