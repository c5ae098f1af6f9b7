// Package filter narrows Workshop search results with expr-lang expressions.
//
// Expressions see the item's fields (Title, Subscriptions, Views, Tags, Created, ...)
// and helpers such as hasTag, daysSince and contains:
//
//	f, err := filter.Compile(`hasTag("Maps") and Subscriptions > 1000 and daysSince(Updated) < 365`)
//	matched, err := f.Apply(items)
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/steamworkshop/workshop"
)

var cache = newProgramCache(defaultCacheSize)

// Filter is a compiled boolean expression over content items
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles expression, reusing a cached program when the same expression
// was compiled before.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if program, ok := cache.Get(expression); ok {
		return &Filter{program: program, expression: expression}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(itemEnv(workshop.ContentItem{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	cache.Put(expression, program)
	return &Filter{program: program, expression: expression}, nil
}

// Match reports whether item satisfies the filter.
func (f *Filter) Match(item workshop.ContentItem) (bool, error) {
	result, err := expr.Run(f.program, itemEnv(item))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, ItemID: item.PublishedFileID, Reason: err.Error(), Err: err}
	}

	// Compile enforces a bool result with expr.AsBool.
	return result.(bool), nil
}

// Apply returns the items that satisfy the filter, keeping their order.
func (f *Filter) Apply(items []workshop.ContentItem) ([]workshop.ContentItem, error) {
	matched := make([]workshop.ContentItem, 0, len(items))
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}
