package commands

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/JovenSoh/bookshelf/pkg/tmpl"
)

const referenceTemplate = `# {{ .Name }} CLI reference

{{ .Usage }}

` + "```" + `
{{ .UsageText }}
` + "```" + `

{{ .Description }}
{{ if .Flags }}
## Global options

| Flag | Environment | Description |
| ---- | ----------- | ----------- |
{{ range .Flags }}| {{ .Names }} | {{ .Env }} | {{ .Usage }} |
{{ end }}{{ end }}{{ range .Commands }}
## {{ .Path }}

{{ .Usage }}
{{ if .UsageText }}
` + "```" + `
{{ .UsageText }}
` + "```" + `
{{ end }}{{ if .Description }}
{{ .Description }}
{{ end }}{{ if .Flags }}
| Flag | Environment | Description |
| ---- | ----------- | ----------- |
{{ range .Flags }}| {{ .Names }} | {{ .Env }} | {{ .Usage }} |
{{ end }}{{ end }}{{ end }}`

type referenceDoc struct {
	Name        string
	Usage       string
	UsageText   string
	Description string
	Flags       []referenceFlag
	Commands    []referenceCommand
}

type referenceCommand struct {
	Path        string
	Usage       string
	UsageText   string
	Description string
	Flags       []referenceFlag
}

type referenceFlag struct {
	Names string
	Env   string
	Usage string
}

// documentedFlag is satisfied by the urfave/cli flag types.
type documentedFlag interface {
	GetUsage() string
	GetEnvVars() []string
}

// Reference renders markdown documentation for root and every visible
// subcommand, depth first.
func Reference(root *cli.Command) (string, error) {
	doc := referenceDoc{
		Name:        root.Name,
		Usage:       root.Usage,
		UsageText:   root.UsageText,
		Description: root.Description,
		Flags:       referenceFlags(root.Flags),
	}

	var walk func(prefix string, cmds []*cli.Command)
	walk = func(prefix string, cmds []*cli.Command) {
		for _, c := range cmds {
			if c.Hidden {
				continue
			}
			path := strings.TrimSpace(prefix + " " + c.Name)
			doc.Commands = append(doc.Commands, referenceCommand{
				Path:        path,
				Usage:       c.Usage,
				UsageText:   c.UsageText,
				Description: c.Description,
				Flags:       referenceFlags(c.Flags),
			})
			walk(path, c.Commands)
		}
	}
	walk(root.Name, root.Commands)

	return tmpl.Render(referenceTemplate, doc)
}

func referenceFlags(flags []cli.Flag) []referenceFlag {
	out := make([]referenceFlag, 0, len(flags))
	for _, f := range flags {
		names := make([]string, 0, len(f.Names()))
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "`-"+n+"`")
			} else {
				names = append(names, "`--"+n+"`")
			}
		}

		rf := referenceFlag{Names: strings.Join(names, ", ")}
		if df, ok := f.(documentedFlag); ok {
			rf.Usage = tableCell(df.GetUsage())
			if env := df.GetEnvVars(); len(env) > 0 {
				rf.Env = "`" + strings.Join(env, "`, `") + "`"
			}
		}
		out = append(out, rf)
	}
	return out
}

func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
