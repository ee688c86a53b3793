// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"context"
	"go/types"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"code.hybscloud.com/visit/internal/logger"
)

// Plan is a config resolved against a loaded package: everything Render
// needs, and nothing that requires the package again.
type Plan struct {
	PackageName string
	PackagePath string
	Dir         string
	Output      string
	Registries  []Resolved
}

// Resolved is a registry whose types were all found in the package.
type Resolved struct {
	Name    string
	Accept  string
	Entries []Entry
}

// Entry is one registered type.
type Entry struct {
	Index  int
	Type   string
	Method string
}

// OutputPath returns the absolute path of the generated file.
func (p *Plan) OutputPath() string {
	return filepath.Join(p.Dir, p.Output)
}

// Resolve loads cfg.Package from dir and checks that every registered name
// is a named, non-interface, non-generic type declared in it.
//
// Type errors in the package are logged and tolerated: a stale generated
// file is a common cause, and regenerating is the fix.
func Resolve(ctx context.Context, dir string, cfg *Config) (*Plan, error) {
	lcfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedTypes,
	}
	pkgs, err := packages.Load(lcfg, cfg.Package)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package %s", cfg.Package)
	}
	if len(pkgs) != 1 {
		return nil, errors.Newf("pattern %s matched %d packages, want 1", cfg.Package, len(pkgs))
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		if e.Kind == packages.ListError {
			return nil, errors.Wrapf(e, "failed to load package %s", cfg.Package)
		}
		logger.Logger.Warnw("package has errors", "package", pkg.PkgPath, "error", e.Msg)
	}
	if pkg.Types == nil || len(pkg.GoFiles) == 0 {
		return nil, errors.Newf("package %s has no Go files", cfg.Package)
	}

	plan := &Plan{
		PackageName: pkg.Name,
		PackagePath: pkg.PkgPath,
		Dir:         filepath.Dir(pkg.GoFiles[0]),
		Output:      cfg.Output,
	}
	scope := pkg.Types.Scope()
	for _, r := range cfg.Registries {
		res := Resolved{Name: r.Name, Accept: r.AcceptMethod()}
		for i, name := range r.Types {
			if err := checkType(scope, name); err != nil {
				return nil, errors.Wrapf(err, "registry %s", r.Name)
			}
			res.Entries = append(res.Entries, Entry{Index: i, Type: name, Method: r.VisitMethod(name)})
		}
		logger.Logger.Debugw("resolved registry", "registry", r.Name, "types", len(res.Entries))
		plan.Registries = append(plan.Registries, res)
	}
	return plan, nil
}

func checkType(scope *types.Scope, name string) error {
	obj, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return errors.WithHintf(
			errors.Wrapf(ErrUnknownType, "%s", name),
			"declare type %s in the target package", name,
		)
	}
	if obj.IsAlias() {
		return errors.Wrapf(ErrUnknownType, "%s is an alias; register the aliased type", name)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return errors.Wrapf(ErrUnknownType, "%s is not a named type", name)
	}
	if named.TypeParams().Len() > 0 {
		return errors.Wrapf(ErrUnknownType, "%s is generic", name)
	}
	switch named.Underlying().(type) {
	case *types.Interface, *types.Pointer:
		return errors.Wrapf(ErrUnknownType, "%s cannot have methods", name)
	}
	return nil
}
