package filter

import (
	"fmt"
	"strings"
	"unicode"

	"model-storage/core/section"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips accents and folds case so that "Crème" and "creme"
// compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Contains matches models whose text contains the query after
// normalisation. An empty query matches everything.
func Contains[T any](text func(T) string) TypedPredicate[T] {
	return func(model T, query string, _ int, _ *section.Section) bool {
		if query == "" {
			return true
		}
		return strings.Contains(Normalize(text(model)), Normalize(query))
	}
}

// Fuzzy matches models whose text contains every query character in order,
// ignoring case and accents. An empty query matches everything.
func Fuzzy[T any](text func(T) string) TypedPredicate[T] {
	return func(model T, query string, _ int, _ *section.Section) bool {
		if query == "" {
			return true
		}
		return fuzzy.MatchNormalizedFold(query, text(model))
	}
}

// Expr compiles code into a predicate. The expression must evaluate to a
// boolean and may use the variables model, query, scope and items.
//
//	filter.Expr[Story](`scope == 0 || model.Channel == "news"`)
func Expr[T any](code string) (TypedPredicate[T], error) {
	var zero T
	env := map[string]any{
		"model": zero,
		"query": "",
		"scope": 0,
		"items": 0,
	}
	program, err := expr.Compile(code, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}
	return func(model T, query string, scope int, sec *section.Section) bool {
		return runExpr(program, model, query, scope, sec)
	}, nil
}

func runExpr(program *vm.Program, model any, query string, scope int, sec *section.Section) bool {
	items := 0
	if sec != nil {
		items = sec.NumberOfItems()
	}
	out, err := expr.Run(program, map[string]any{
		"model": model,
		"query": query,
		"scope": scope,
		"items": items,
	})
	if err != nil {
		return false
	}
	matched, _ := out.(bool)
	return matched
}

// Any matches when at least one of preds does.
func Any[T any](preds ...TypedPredicate[T]) TypedPredicate[T] {
	return func(model T, query string, scope int, sec *section.Section) bool {
		for _, p := range preds {
			if p != nil && p(model, query, scope, sec) {
				return true
			}
		}
		return false
	}
}

// All matches when every one of preds does. Nil predicates are skipped.
func All[T any](preds ...TypedPredicate[T]) TypedPredicate[T] {
	return func(model T, query string, scope int, sec *section.Section) bool {
		for _, p := range preds {
			if p != nil && !p(model, query, scope, sec) {
				return false
			}
		}
		return true
	}
}
