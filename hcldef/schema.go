package hcldef

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// fileRoot is the top-level structure of a definition file for decoding.
type fileRoot struct {
	Systems []*systemBlock `hcl:"system,block"`
}

type systemBlock struct {
	Name  string       `hcl:"name,label"`
	Bases []*baseBlock `hcl:"base,block"`
	Units []*unitBlock `hcl:"unit,block"`
}

type baseBlock struct {
	Symbol   string `hcl:"symbol,label"`
	Name     string `hcl:"name"`
	Quantity string `hcl:"quantity"`
}

type unitBlock struct {
	Symbol   string         `hcl:"symbol,label"`
	Name     string         `hcl:"name"`
	Quantity string         `hcl:"quantity"`
	Factor   hcl.Expression `hcl:"factor,optional"`
	Terms    []*termBlock   `hcl:"term,block"`
}

type termBlock struct {
	Symbol string   `hcl:"symbol,label"`
	Exp    *float64 `hcl:"exp,optional"`
}

// evalContext is the scope available to factor expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: map[string]function.Function{
			"pow": stdlib.PowFunc,
		},
	}
}
