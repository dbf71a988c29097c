package filter

import (
	"reflect"

	"model-storage/core/section"
)

// Predicate reports whether model matches query and scope. sec is the source
// section model belongs to.
type Predicate func(model any, query string, scope int, sec *section.Section) bool

// TypedPredicate is a Predicate for models of type T.
type TypedPredicate[T any] func(model T, query string, scope int, sec *section.Section) bool

// Source is anything that exposes sections to filter.
type Source interface {
	Sections() []*section.Section
}

// Registry holds at most one predicate per concrete model type.
type Registry struct {
	predicates map[reflect.Type]Predicate
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{predicates: make(map[reflect.Type]Predicate)}
}

// Register sets the predicate for models of type t, replacing any previous
// one. A nil predicate removes the entry.
func (r *Registry) Register(t reflect.Type, p Predicate) {
	if p == nil {
		delete(r.predicates, t)
		return
	}
	r.predicates[t] = p
}

// Register sets the predicate for models of the concrete type T. Interface
// types never match since lookups use the dynamic type of each item.
func Register[T any](r *Registry, p TypedPredicate[T]) {
	if p == nil {
		r.Register(reflect.TypeFor[T](), nil)
		return
	}
	r.Register(reflect.TypeFor[T](), func(model any, query string, scope int, sec *section.Section) bool {
		v, ok := model.(T)
		return ok && p(v, query, scope, sec)
	})
}

// Lookup returns the predicate registered for t.
func (r *Registry) Lookup(t reflect.Type) (Predicate, bool) {
	p, ok := r.predicates[t]
	return p, ok
}

// Len returns the number of registered predicates.
func (r *Registry) Len() int {
	return len(r.predicates)
}

// Apply filters every section of src and returns the resulting view.
func (r *Registry) Apply(src Source, query string, scope int) *View {
	v := &View{}
	for _, sec := range src.Sections() {
		var kept []any
		for _, item := range sec.Items() {
			if item == nil {
				continue
			}
			p, ok := r.predicates[reflect.TypeOf(item)]
			if ok && p(item, query, scope, sec) {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out := section.New()
		out.SetItems(kept)
		for kind, model := range sec.Supplementaries() {
			out.SetSupplementary(kind, model)
		}
		v.sections = append(v.sections, out)
	}
	return v
}
