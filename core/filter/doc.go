// Package filter derives read-only, filtered views of a sectioned storage.
//
// A Registry maps concrete model types to predicates. Applying a query walks
// every section of a Source and keeps the items whose type has a registered
// predicate that accepts them. Items of unregistered types are left out.
// Sections left empty are dropped, so the indices of a View do not line up
// with the source.
//
// # Predicates
//
// Register a predicate for a concrete type with the generic helper:
//
//	filter.Register(reg, filter.Contains(func(s Story) string { return s.Title }))
//
// Contains matches a normalised substring, ignoring case and accents.
// Fuzzy matches the query characters in order. Expr compiles an expr-lang
// expression that sees model, query, scope and items (the number of items
// in the section being filtered). Any combines predicates with a logical or.
//
// A View shares item references with its source but nothing else: it has no
// change tracking and is rebuilt by every Apply.
package filter
