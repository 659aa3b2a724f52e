package hcldef

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/katalvlaran/unitexpr/unit"
)

// Parse decodes one HCL buffer and builds the unit systems it declares.
// filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]*unit.System, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	return buildFile(file, filename)
}

// ParseFile reads and decodes a single definition file.
func ParseFile(path string) ([]*unit.System, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(src, path)
}

// Load walks the given paths, parsing every *.hcl file found (a file path
// is taken as-is, a directory is searched recursively), and returns all
// systems declared across them.
func Load(paths ...string) ([]*unit.System, error) {
	var systems []*unit.System
	for _, root := range paths {
		files, err := findHCLFiles(root)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			built, err := ParseFile(path)
			if err != nil {
				return nil, err
			}
			systems = append(systems, built...)
		}
	}

	return systems, nil
}

// findHCLFiles resolves a root path to the definition files beneath it.
func findHCLFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// buildFile decodes the root schema and builds each declared system.
func buildFile(file *hcl.File, filename string) ([]*unit.System, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}

	systems := make([]*unit.System, 0, len(root.Systems))
	for _, block := range root.Systems {
		sys, err := buildSystem(block)
		if err != nil {
			return nil, fmt.Errorf("%s: system %q: %w", filename, block.Name, err)
		}
		systems = append(systems, sys)
	}

	return systems, nil
}

// buildSystem turns one system block into a live unit system.
func buildSystem(block *systemBlock) (*unit.System, error) {
	symbols := make([]unit.Symbol, len(block.Bases))
	for i, base := range block.Bases {
		symbols[i] = unit.Symbol{
			Symbol:   base.Symbol,
			Name:     base.Name,
			Quantity: base.Quantity,
		}
	}

	sys, err := unit.NewSystem(block.Name, symbols...)
	if err != nil {
		return nil, err
	}

	ctx := evalContext()
	for _, ub := range block.Units {
		expr, err := buildExpr(sys, ub, ctx)
		if err != nil {
			return nil, err
		}
		if _, err := sys.Define(ub.Symbol, ub.Name, ub.Quantity, expr); err != nil {
			return nil, err
		}
	}

	return sys, nil
}

// buildExpr evaluates a unit block's factor and folds its terms into one
// expression. Terms resolve against everything declared so far.
func buildExpr(sys *unit.System, ub *unitBlock, ctx *hcl.EvalContext) (unit.Expr, error) {
	factor, err := evalFactor(ub.Factor, ctx)
	if err != nil {
		return unit.Expr{}, fmt.Errorf("unit %q: %w", ub.Symbol, err)
	}

	expr := sys.Number(factor)
	for _, tb := range ub.Terms {
		u, ok := sys.Unit(tb.Symbol)
		if !ok {
			return unit.Expr{}, fmt.Errorf("unit %q: term %q: %w", ub.Symbol, tb.Symbol, ErrUnknownTerm)
		}

		exp := 1.0
		if tb.Exp != nil {
			exp = *tb.Exp
		}
		raised, err := unit.Pow(u, exp)
		if err != nil {
			return unit.Expr{}, fmt.Errorf("unit %q: term %q: %w", ub.Symbol, tb.Symbol, err)
		}
		if expr, err = unit.Mul(expr, raised); err != nil {
			return unit.Expr{}, fmt.Errorf("unit %q: term %q: %w", ub.Symbol, tb.Symbol, err)
		}
	}

	return expr, nil
}

// evalFactor resolves an optional factor expression to a float64.
func evalFactor(expr hcl.Expression, ctx *hcl.EvalContext) (float64, error) {
	if expr == nil {
		return 1, nil
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("evaluate factor: %w", diags)
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadFactor, err)
	}

	factor, _ := val.AsBigFloat().Float64()

	return factor, nil
}
