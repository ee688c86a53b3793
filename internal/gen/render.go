// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"os"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"

	"code.hybscloud.com/visit/internal/logger"
)

// RuntimeImport is the import path of the runtime dispatch package.
const RuntimeImport = "code.hybscloud.com/visit"

var fileTemplate = template.Must(template.New("visit").Funcs(template.FuncMap{
	"cons": consChain,
}).Parse(`// Code generated by visitgen. DO NOT EDIT.

package {{.PackageName}}

import "` + RuntimeImport + `"
{{range $r := .Registries}}
// {{$r.Name}}Types is the {{$r.Name}} registry, in declaration order.
type {{$r.Name}}Types = {{cons $r}}

// {{$r.Name}}Visitor has one method per type of {{$r.Name}}Types.
type {{$r.Name}}Visitor interface {
{{- range $r.Entries}}
	{{.Method}}(*{{.Type}})
{{- end}}
}

// {{$r.Name}}Visitable is implemented by every type of {{$r.Name}}Types.
type {{$r.Name}}Visitable interface {
	{{$r.Accept}}(v {{$r.Name}}Visitor)
}
{{range $r.Entries}}
func (x *{{.Type}}) {{$r.Accept}}(v {{$r.Name}}Visitor) { v.{{.Method}}(x) }
{{- end}}

// {{$r.Name}}Funcs is a {{$r.Name}}Visitor built from one func per type.
type {{$r.Name}}Funcs struct {
{{- range $r.Entries}}
	{{.Type}} func(*{{.Type}})
{{- end}}
}
{{range $r.Entries}}
func (f {{$r.Name}}Funcs) {{.Method}}(x *{{.Type}}) { f.{{.Type}}(x) }
{{- end}}

// {{$r.Name}}Runtime returns the dispatch table of v over {{$r.Name}}Types.
func {{$r.Name}}Runtime(v {{$r.Name}}Visitor) *visit.Visitor[{{$r.Name}}Types] {
	return visit.MustNew[{{$r.Name}}Types](
{{- range $r.Entries}}
		visit.On(v.{{.Method}}),
{{- end}}
	)
}
{{end}}`))

// consChain spells the registry of r as nested visit.Cons.
func consChain(r Resolved) string {
	var b strings.Builder
	for _, e := range r.Entries {
		b.WriteString("visit.Cons[")
		b.WriteString(e.Type)
		b.WriteString(", ")
	}
	b.WriteString("visit.Nil")
	b.WriteString(strings.Repeat("]", len(r.Entries)))
	return b.String()
}

// Render returns the formatted source of the generated file.
// Output depends only on the plan, so it is stable across runs.
func Render(p *Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, p); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}
	src, err := imports.Process(p.Output, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.WithDetail(
			errors.Wrap(err, "generated source does not parse"),
			buf.String(),
		)
	}
	return src, nil
}

// Generate renders p and writes it to p.OutputPath.
func Generate(p *Plan) (string, error) {
	src, err := Render(p)
	if err != nil {
		return "", err
	}
	path := p.OutputPath()
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	logger.Logger.Infow("generated", "file", path, "registries", len(p.Registries))
	return path, nil
}

// Check renders p and compares it with the file on disk.
// It fails with ErrStale if the file is missing or differs.
func Check(p *Plan) error {
	want, err := Render(p)
	if err != nil {
		return err
	}
	path := p.OutputPath()
	got, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return errors.WithHint(
			errors.Wrapf(ErrStale, "%s does not exist", path),
			"run visitgen generate",
		)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if !bytes.Equal(got, want) {
		return errors.WithHint(
			errors.Wrapf(ErrStale, "%s", path),
			"run visitgen generate",
		)
	}
	logger.Logger.Debugw("up to date", "file", path)
	return nil
}
