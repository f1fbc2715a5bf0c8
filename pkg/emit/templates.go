package emit

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"join":  strings.Join,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		callbacksTmpl +
		constantsTmpl +
		groupsTmpl +
		specialTmpl +
		commandsTmpl +
		initTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		return fmt.Errorf("template %s: %w", name, err)
	}
	return nil
}

// --- Template data types ---

type fileData struct {
	Package  string
	Selected string
	Runtime  string
}

type constData struct {
	Name  string
	Type  string
	Value string
}

type caseData struct {
	Const string
	Name  string
}

type groupData struct {
	Name     string
	TypeName string
	Storage  string
	Hints    []string
	Members  []constData
	Cases    []caseData
}

type paramData struct {
	Name string
	Type string
}

type commandData struct {
	Name   string
	Alias  string
	PFN    string
	Slot   string
	Func   string
	Params []paramData
	Return string
}

// Signature returns the parameter list and result of the command.
func (c commandData) Signature() string {
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = p.Name + " " + p.Type
	}
	sig := "(" + strings.Join(parts, ", ") + ")"
	if c.Return != "" {
		sig += " " + c.Return
	}
	return sig
}

// Args returns the argument list used to forward a wrapper call.
func (c commandData) Args() string {
	names := make([]string, len(c.Params))
	for i, p := range c.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by glad-gen. DO NOT EDIT.
{{- if .Selected}}
//
// Selection: {{.Selected}}
{{- end}}

package {{.Package}}

import (
	"unsafe"

	"{{.Runtime}}"
)
{{end}}`

const callbacksTmpl = `{{define "callbacks"}}
// GetProcAddressFunc resolves an entry point name to its address. A zero
// address means the entry point is not available.
type GetProcAddressFunc = procaddr.Func

// DebugProc receives messages from the debug output extension.
type DebugProc func(source int32, typ int32, id uint32, severity int32, length int32, message *byte, userParam unsafe.Pointer)

// DebugProcAMD receives messages from GL_AMD_debug_output.
type DebugProcAMD func(id uint32, category int32, severity int32, length int32, message *byte, userParam unsafe.Pointer)

// VulkanProcNV is the entry point type returned by glGetVkProcAddrNV.
type VulkanProcNV func()
{{end}}`

const constantsTmpl = `{{define "constants"}}
{{- if .}}
// Registry constants under their original names.
const (
{{- range .}}
	{{.Name}} {{.Type}} = {{.Value}}
{{- end}}
)
{{end}}
{{- end}}`

const groupsTmpl = `{{define "groups"}}
{{- range .}}
// {{.TypeName}} holds the values of the {{.Name}} group.
type {{.TypeName}} {{.Storage}}

const (
{{- range .Members}}
	{{.Name}} {{.Type}} = {{.Value}}
{{- end}}
)

// String returns the registry name of the value.
func (v {{.TypeName}}) String() string {
	switch v {
{{- range .Cases}}
	case {{.Const}}:
		return {{quote .Name}}
{{- end}}
	default:
		return "UNKNOWN"
	}
}
{{end}}
{{- end}}`

const specialTmpl = `{{define "special"}}
{{- if .}}
// Special numbers that are not part of an enumerated type.
const (
{{- range .}}
	{{.Name}} {{.Type}} = {{.Value}}
{{- end}}
)
{{end}}
{{- end}}`

const commandsTmpl = `{{define "commands"}}
{{- range .}}
type {{.PFN}} func{{.Signature}}

var {{.Slot}} {{.PFN}}

// {{.Func}} calls {{.Name}}.
{{- if .Alias}}
// It is an alias of {{.Alias}}.
{{- end}}
func {{.Func}}{{.Signature}} {
	{{if .Return}}return {{end}}{{.Slot}}({{.Args}})
}
{{end}}
{{- end}}`

const initTmpl = `{{define "init"}}
// Init binds every entry point through getProcAddress. Entry points that
// resolve to zero stay unbound and panic when called.
func Init(getProcAddress GetProcAddressFunc) {
{{- range .}}
	procaddr.Bind(&{{.Slot}}, getProcAddress, {{quote .Name}})
{{- end}}
}
{{end}}`
