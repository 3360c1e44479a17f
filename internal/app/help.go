package app

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/vburojevic/towezterm/internal/errors"
)

// -------------------------
// Help (agent-friendly)
// -------------------------

type helpFlag struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

type helpCommand struct {
	Name        string     `json:"name"`
	Usage       string     `json:"usage"`
	Description string     `json:"description"`
	Flags       []helpFlag `json:"flags,omitempty"`
}

type helpDoc struct {
	Name        string            `json:"name"`
	OneLiner    string            `json:"one_liner"`
	Usage       []string          `json:"usage"`
	Commands    []helpCommand     `json:"commands"`
	GlobalFlags []helpFlag        `json:"global_flags"`
	IOContract  map[string]string `json:"io_contract"`
	ExitCodes   map[string]string `json:"exit_codes"`
	ErrorCodes  map[string]string `json:"error_codes"`
	Env         map[string]string `json:"env"`
	Config      map[string]string `json:"config"`
	Notes       []string          `json:"notes"`
}

func newHelpCmd() *cobra.Command {
	var format string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "help",
		Short: "Show extended help (agent-friendly)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut {
				format = "json"
			}
			format = strings.TrimSpace(strings.ToLower(format))
			if format == "" {
				format = "text"
			}

			doc := buildHelpDoc()

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			default:
				fmt.Fprint(cmd.OutOrStdout(), renderHelpText(doc))
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func buildHelpDoc() helpDoc {
	global := []helpFlag{
		{Name: "-i, --iterm2", Type: "bool", Default: "false", Description: "Convert iTerm2 color themes"},
		{Name: "-k, --kitty", Type: "bool", Default: "false", Description: "Convert kitty color themes"},
		{Name: "-a, --all", Type: "bool", Default: "false", Description: "Convert both and merge them (iTerm2 first)"},
		{Name: "-o, --outfile", Type: "string", Default: "", Description: "Output file (defaults depend on the source)"},
		{Name: "-I, --interactive", Type: "bool", Default: "false", Description: "Choose source and output file in a form (TTY only)"},
		{Name: "--print", Type: "bool", Default: "false", Description: "Print a table of the converted themes"},
		{Name: "--no-color", Type: "bool", Default: "false", Description: "Disable color output"},
	}

	commands := []helpCommand{
		{Name: appName, Usage: "towezterm --iterm2|--kitty|--all [-o file]", Description: "Clone theme repositories and write WezTerm color schemes"},
		{Name: "list", Usage: "towezterm list <file> [--json] [--filter text]", Description: "List themes in a generated file"},
		{Name: "preview", Usage: "towezterm preview <file>", Description: "Browse a generated file with color swatches (TTY)"},
		{Name: "doctor", Usage: "towezterm doctor", Description: "Check git and show the effective setup"},
		{Name: "config", Usage: "towezterm config [--show] [--init]", Description: "Show or initialize config"},
		{Name: "help", Usage: "towezterm help [--format json]", Description: "Extended help for humans/agents"},
	}

	return helpDoc{
		Name:     appName,
		OneLiner: "Convert iTerm2 and/or kitty color themes to a format WezTerm can read",
		Usage: []string{
			"towezterm --iterm2 [-o file]",
			"towezterm --kitty [-o file]",
			"towezterm --all [-o file]",
			"towezterm list <file> [flags]",
			"towezterm preview <file>",
			"towezterm doctor",
			"towezterm config [--show] [--init]",
			"towezterm help [--format json]",
		},
		Commands:    commands,
		GlobalFlags: global,
		IOContract: map[string]string{
			"stdout": "Progress messages, tables and JSON.",
			"stderr": "Errors.",
			"file":   "JSON object of theme name to colors, 4-space indent, sorted by source file path.",
		},
		ExitCodes: map[string]string{
			"0": "Success, or nothing to do",
			"1": "git missing, conflicting mode flags, clone failure, or read/write error",
		},
		ErrorCodes: errorCodeDocs(),
		Env: map[string]string{
			envHome:                 "Override the config directory",
			"TOWEZTERM_GIT":         "git binary to run",
			"TOWEZTERM_ITERM2_REPO": "iTerm2 themes repository URL",
			"TOWEZTERM_KITTY_REPO":  "kitty themes repository URL",
			"TOWEZTERM_NO_COLOR":    "Disable color output",
			"ACCESSIBLE":            "Enable accessible interactive form",
		},
		Config: map[string]string{
			"path": "~/.config/towezterm/config.yaml",
		},
		Notes: []string{
			"Only one of --iterm2, --kitty and --all may be given.",
			"Defaults: color-schemes-iterm2.json, color-schemes-kitty.json, color-schemes.json (--all).",
			"Later theme files with the same name replace earlier ones.",
		},
	}
}

func renderHelpText(doc helpDoc) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n\n", doc.Name, doc.OneLiner))

	b.WriteString("USAGE\n")
	for _, u := range doc.Usage {
		b.WriteString("  " + u + "\n")
	}
	b.WriteString("\nCOMMANDS\n")
	for _, c := range doc.Commands {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", c.Name, c.Description))
	}
	b.WriteString("\nGLOBAL FLAGS\n")
	for _, f := range doc.GlobalFlags {
		b.WriteString(fmt.Sprintf("  %-20s %-7s %-6s %s\n", f.Name, f.Type, f.Default, f.Description))
	}
	b.WriteString("\nI/O CONTRACT\n")
	for _, k := range sortedKeys(doc.IOContract) {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, doc.IOContract[k]))
	}
	b.WriteString("\nEXIT CODES\n")
	for _, k := range sortedKeys(doc.ExitCodes) {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, doc.ExitCodes[k]))
	}
	b.WriteString("\nERROR CODES\n")
	for _, k := range sortedKeys(doc.ErrorCodes) {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, doc.ErrorCodes[k]))
	}
	b.WriteString("\nENV\n")
	for _, k := range sortedKeys(doc.Env) {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, doc.Env[k]))
	}
	b.WriteString("\nCONFIG\n")
	for _, k := range sortedKeys(doc.Config) {
		b.WriteString(fmt.Sprintf("  %s: %s\n", k, doc.Config[k]))
	}
	if len(doc.Notes) > 0 {
		b.WriteString("\nNOTES\n")
		for _, n := range doc.Notes {
			b.WriteString("  - " + n + "\n")
		}
	}
	return b.String()
}

func errorCodeDocs() map[string]string {
	out := make(map[string]string, len(apperrors.Descriptions))
	for code, desc := range apperrors.Descriptions {
		out[string(code)] = desc
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
