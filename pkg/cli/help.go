package cli

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"
)

func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Usage generates a help message for a handler on a given command path.
func Usage(h Handler, path string) string {
	meta, _, _ := structMetaFor(h)

	usage := "Usage: " + path
	if 0 < len(meta.Flags) {
		usage += " [OPTION]..."
	}
	lines := []string{usage}

	if s, ok := h.(HelpSummary); ok {
		lines = append(lines, "", s.Summary())
	}

	if 0 < len(meta.Flags) {
		lines = append(lines, "", "Options:")
		for _, f := range meta.Flags {
			line := fmt.Sprintf("  -%s=[%s]", f.Names[0], f.StructField.Type.String())
			if 0 < len(f.Desc) {
				line += ": " + f.Desc
			}
			if name, ok := f.StructField.Tag.Lookup("env"); ok {
				line += fmt.Sprintf(" (env: %s)", name)
			}
			if f.HasDefault {
				line += fmt.Sprintf(" (default: %s)", f.Default)
			}
			lines = append(lines, line)
			for _, alias := range f.Names[1:] {
				lines = append(lines, "  -"+alias)
			}
		}
	}
	return strings.Join(lines, lineSeparator)
}

func helpCommands(handlers map[string]Handler) string {
	var cmds []string
	for name, h := range handlers {
		line := " - " + name
		if s, ok := h.(HelpSummary); ok {
			line += ": " + s.Summary()
		}
		cmds = append(cmds, line)
	}
	if len(cmds) == 0 {
		return ""
	}
	sort.Strings(cmds)
	return strings.Join(append([]string{"Commands:"}, cmds...), lineSeparator)
}
