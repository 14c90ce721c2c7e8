package gen

import (
	"text/template"
)

// fileTemplate renders one generated file. Function bodies are pre-rendered
// into blocks separated by blank lines.
var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by objbuild-gen. DO NOT EDIT.

package {{.Package}}

import (
{{- range $i, $group := .Imports}}{{if $i}}
{{end}}
{{- range $group}}
	{{if .Alias}}{{.Alias}} {{end}}{{printf "%q" .Path}}
{{- end}}
{{- end}}
)

func init() {
{{- range .Builders}}
	{{$.Builder}}.MustRegisterFactory({{.Func}})
{{- end}}
}
{{range .Builders}}
// {{.Func}} constructs {{.Type}} with {{.Via}}.
func {{.Func}}(o *{{$.Override}}.Store, src *{{.Type}}) (*{{.Type}}, error) {
{{- range .Blocks}}
{{.}}
{{end}}
	return obj, nil
}
{{end -}}
`))

// resolveTemplate renders the lookup of one value: the override when set,
// else the source property, else the zero value.
var resolveTemplate = template.Must(template.New("resolve").Parse(`	{{.Var}}, err := {{.Override}}.Resolve(o, {{printf "%q" .Key}}, func() (v {{.Type}}) {
		if src != nil {
			v = src.{{.Read}}
		}

		return v
	})
	if err != nil {
		return nil, err
	}`))

// fileData holds all data needed for the file template.
type fileData struct {
	Package string
	Imports [][]importSpec
	// Builder and Override are the local names of the runtime packages.
	Builder  string
	Override string
	Builders []builderData
}

// builderData describes one construction routine.
type builderData struct {
	Func string
	Type string
	// Via names the constructor, or new(T).
	Via    string
	Blocks []string
}

// resolveData describes one override lookup.
type resolveData struct {
	Override string
	Var      string
	Key      string
	Type     string
	// Read is the expression reading the property from src.
	Read string
}
