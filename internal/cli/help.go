package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gramlint/internal/configloader"
	"github.com/yaklabco/gramlint/internal/ui/pretty"
)

const usageTemplate = `{{heading "Usage:"}}{{if .Runnable}}
  {{command .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{heading "Aliases:"}}
  {{dim (join .Aliases ", ")}}{{end}}{{if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{heading "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{name (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}{{if not .HasParent}}

{{heading "Environment:"}}
{{envVars}}{{end}}{{if .HasAvailableSubCommands}}

Run "{{command (print .CommandPath " [command] --help")}}" for details on a command.{{end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{command .CommandPath}}{{if .Version}} {{dim .Version}}{{end}}

{{end}}{{with (or .Long .Short)}}{{trimLines .}}

{{end}}{{template "usage" .}}`

// helpStyles are the lipgloss styles the help templates render with.
type helpStyles struct {
	command lipgloss.Style
	heading lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(color bool) helpStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return helpStyles{command: plain, heading: plain, name: plain, flag: plain, dim: plain}
	}

	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return helpStyles{
		command: fg("14").Bold(true),
		heading: fg("11").Bold(true),
		name:    fg("10"),
		flag:    fg("12"),
		dim:     fg("8"),
	}
}

// HelpFormatter renders cobra help and usage text with styled headings,
// aligned flag tables and the GRAMLINT_* environment variables.
type HelpFormatter struct {
	styles    helpStyles
	templates *template.Template
}

// NewHelpFormatter builds a formatter whose colors follow colorMode for writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer))}

	funcs := template.FuncMap{
		"command":   h.styles.command.Render,
		"heading":   h.styles.heading.Render,
		"name":      h.styles.name.Render,
		"dim":       h.styles.dim.Render,
		"flags":     h.flagTable,
		"envVars":   h.envTable,
		"rpad":      rpad,
		"join":      strings.Join,
		"trimLines": trimLineEnds,
	}
	h.templates = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	template.Must(h.templates.New("help").Parse(helpTemplate))

	return h
}

// ApplyToCommand installs the formatter on cmd. Subcommands inherit it.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := h.templates.ExecuteTemplate(c.OutOrStderr(), "usage", c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.templates.ExecuteTemplate(c.OutOrStdout(), "help", c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// flagTable lists the visible flags of fs, one per line, with descriptions
// aligned in a single column.
func (h *HelpFormatter) flagTable(fs *pflag.FlagSet) string {
	type row struct {
		names, kind, usage string
	}

	var rows []row
	width := 0
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		kind, usage := pflag.UnquoteUsage(f)
		if def := flagDefault(f); def != "" {
			usage += " (default " + def + ")"
		}

		names := "    --" + f.Name
		if f.Shorthand != "" {
			names = "-" + f.Shorthand + ", --" + f.Name
		}
		rows = append(rows, row{names: names, kind: kind, usage: usage})
		width = max(width, len(names)+len(kind)+1)
	})

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		pad := strings.Repeat(" ", width-len(r.names)-len(r.kind)-1)
		lines = append(lines, "  "+h.styles.flag.Render(r.names)+" "+h.styles.dim.Render(r.kind)+pad+"   "+r.usage)
	}
	return strings.Join(lines, "\n")
}

// flagDefault returns the default shown in help, or "" for zero defaults.
func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "false", "0", "[]":
		return ""
	}
	if f.Value.Type() == "string" {
		return fmt.Sprintf("%q", f.DefValue)
	}
	return f.DefValue
}

// envTable lists the supported GRAMLINT_* variables sorted by name.
func (h *HelpFormatter) envTable() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+h.styles.flag.Render(rpad(name, width))+"   "+vars[name])
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimLineEnds(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
