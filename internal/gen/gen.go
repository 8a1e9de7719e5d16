// Package gen implements the jelcolgen code generators. It loads a target
// Go package, checks that the requested types satisfy the conversion
// contract, and produces the database/sql glue source for them.
//
// Two kinds of output are produced. A column registration gives a custom
// type Value and Scan methods so the sql package treats it as a column of
// its declared raw type. A queryable gives a struct a ScanRow method that
// builds it positionally from a decoded row, plus a RowValues method for
// the write direction.
package gen

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// rawTypes is the set of raw column types a contract may declare, keyed by
// the type's printed form. It matches the jelcol.Raw constraint.
var rawTypes = map[string]bool{
	"int64":     true,
	"float64":   true,
	"bool":      true,
	"string":    true,
	"[]byte":    true,
	"time.Time": true,
}

// Column is the generation model for one custom type to be wired into the
// read/write machinery.
type Column struct {
	Package  string // name of the package the type lives in
	Type     string // name of the type
	Raw      string // printed form of the declared raw column type
	FromFunc string // name of the package-level raw-to-native function
}

// NeedsTimeImport returns whether code generated for the Column must import
// the time package.
func (c Column) NeedsTimeImport() bool {
	return c.Raw == "time.Time"
}

// Queryable is the generation model for one struct to be equipped with
// positional row scanning.
type Queryable struct {
	Package string   // name of the package the struct lives in
	Type    string   // name of the struct type
	Fields  []string // field names, in declaration order
}

// Package is a loaded, type-checked Go package that generation targets are
// looked up in.
type Package struct {
	pkg *packages.Package
}

// Load loads and type-checks the single Go package rooted in dir.
func Load(dir string) (*Package, error) {
	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("load package in %q: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("load package in %q: expected exactly 1 package, got %d", dir, len(pkgs))
	}

	var errs []error
	for _, e := range pkgs[0].Errors {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package %s has errors: %v", pkgs[0].PkgPath, errs)
	}

	return &Package{pkg: pkgs[0]}, nil
}

// Name returns the name of the loaded package.
func (p *Package) Name() string {
	return p.pkg.Name
}

// Column checks that the named type implements the conversion contract and
// returns its generation model. The contract is a ToColumn method with no
// parameters returning one of the raw column types, together with a
// package-level function <Type>FromColumn that accepts that raw type and
// returns (<Type>, error). Registration cannot proceed until both halves
// exist.
func (p *Package) Column(typeName string) (Column, error) {
	named, err := p.lookupNamed(typeName)
	if err != nil {
		return Column{}, err
	}

	var toCol *types.Func
	for i := 0; i < named.NumMethods(); i++ {
		if named.Method(i).Name() == "ToColumn" {
			toCol = named.Method(i)
			break
		}
	}
	if toCol == nil {
		return Column{}, fmt.Errorf("%s does not implement the conversion contract: no ToColumn method", typeName)
	}

	sig := toCol.Type().(*types.Signature)
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return Column{}, fmt.Errorf("%s.ToColumn must take no parameters and return exactly one value", typeName)
	}

	raw := types.TypeString(sig.Results().At(0).Type(), nil)
	if !rawTypes[raw] {
		return Column{}, fmt.Errorf("%s.ToColumn returns %s; the raw type must be one of int64, float64, bool, string, []byte, or time.Time", typeName, raw)
	}

	fromName := typeName + "FromColumn"
	fromObj := p.pkg.Types.Scope().Lookup(fromName)
	if fromObj == nil {
		return Column{}, fmt.Errorf("%s does not implement the conversion contract: no %s function", typeName, fromName)
	}
	fromFn, ok := fromObj.(*types.Func)
	if !ok {
		return Column{}, fmt.Errorf("%s is not a function", fromName)
	}

	fromSig := fromFn.Type().(*types.Signature)
	if fromSig.Params().Len() != 1 || types.TypeString(fromSig.Params().At(0).Type(), nil) != raw {
		return Column{}, fmt.Errorf("%s must take exactly one %s parameter", fromName, raw)
	}
	if fromSig.Results().Len() != 2 ||
		!types.Identical(fromSig.Results().At(0).Type(), named) ||
		types.TypeString(fromSig.Results().At(1).Type(), nil) != "error" {
		return Column{}, fmt.Errorf("%s must return (%s, error)", fromName, typeName)
	}

	return Column{
		Package:  p.pkg.Name,
		Type:     typeName,
		Raw:      raw,
		FromFunc: fromName,
	}, nil
}

// Queryable checks that the named struct type can be built positionally
// from a row and returns its generation model. Every field must either be
// one of the raw column types or a type already recognized as a column,
// which means registration of any custom field types must happen before the
// struct can be made queryable.
func (p *Package) Queryable(typeName string) (Queryable, error) {
	named, err := p.lookupNamed(typeName)
	if err != nil {
		return Queryable{}, err
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return Queryable{}, fmt.Errorf("%s is not a struct type", typeName)
	}

	q := Queryable{
		Package: p.pkg.Name,
		Type:    typeName,
	}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !p.columnCompatible(f.Type()) {
			return Queryable{}, fmt.Errorf("%s.%s has type %s, which is not a column type; register it first", typeName, f.Name(), types.TypeString(f.Type(), nil))
		}
		q.Fields = append(q.Fields, f.Name())
	}

	if len(q.Fields) == 0 {
		return Queryable{}, fmt.Errorf("%s has no fields to scan", typeName)
	}

	return q, nil
}

func (p *Package) lookupNamed(typeName string) (*types.Named, error) {
	obj := p.pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("no type named %s in package %s", typeName, p.pkg.Name)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type", typeName)
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s is not a named type", typeName)
	}

	return named, nil
}

// columnCompatible reports whether values of t can already be bound to and
// scanned from a column, either because t is a raw column type or because
// it provides Scan and Value methods.
func (p *Package) columnCompatible(t types.Type) bool {
	if rawTypes[types.TypeString(t, nil)] {
		return true
	}

	hasScan := false
	hasValue := false
	ms := types.NewMethodSet(types.NewPointer(t))
	for i := 0; i < ms.Len(); i++ {
		switch ms.At(i).Obj().Name() {
		case "Scan":
			hasScan = true
		case "Value":
			hasValue = true
		}
	}

	return hasScan && hasValue
}
