package columnar

import (
	"reflect"
	"sync"

	"github.com/brimdata/columnar/colerr"
	"github.com/brimdata/columnar/vector"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry associates value types with their preferred shapes.  It is
// safe for concurrent use, though the stores built from its shapes are not.
type Registry struct {
	mu     sync.RWMutex
	shapes map[reflect.Type]entry
	names  map[string]reflect.Type
}

type entry struct {
	name  string
	view  reflect.Type
	shape any
}

func NewRegistry() *Registry {
	return &Registry{
		shapes: make(map[reflect.Type]entry),
		names:  make(map[string]reflect.Type),
	}
}

// Default holds the predeclared primitive shapes.
var Default = newDefault()

func newDefault() *Registry {
	r := NewRegistry()
	must(Register(r, Bool))
	must(Register(r, Int8))
	must(Register(r, Int16))
	must(Register(r, Int32))
	must(Register(r, Int64))
	must(Register(r, Int))
	must(Register(r, Uint8))
	must(Register(r, Uint16))
	must(Register(r, Uint32))
	must(Register(r, Uint64))
	must(Register(r, Uint))
	must(Register(r, Float16))
	must(Register(r, Float32))
	must(Register(r, Float64))
	must(Register(r, Duration))
	must(Register(r, KSUID))
	must(Register(r, Unit))
	must(Register(r, String))
	must(Register(r, Bytes))
	return r
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Register makes s the shape for values of type T in r.  It is an error
// to register a second shape for T or a second shape with the same name.
func Register[T, V any](r *Registry, s Shape[T, V]) error {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.shapes[typ]; ok {
		return colerr.E(colerr.Exists, "type %s already has shape %q", typ, e.name)
	}
	if other, ok := r.names[s.name]; ok {
		return colerr.E(colerr.Exists, "shape %q already registered for type %s", s.name, other)
	}
	r.shapes[typ] = entry{
		name:  s.name,
		view:  reflect.TypeOf((*V)(nil)).Elem(),
		shape: s,
	}
	r.names[s.name] = typ
	return nil
}

// Lookup returns the shape registered for values of type T, which must
// have views of type V.
func Lookup[T, V any](r *Registry) (Shape[T, V], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.RLock()
	e, ok := r.shapes[typ]
	r.mu.RUnlock()
	if !ok {
		return Shape[T, V]{}, colerr.E(colerr.NotFound, "no shape for type %s", typ)
	}
	s, ok := e.shape.(Shape[T, V])
	if !ok {
		view := reflect.TypeOf((*V)(nil)).Elem()
		return Shape[T, V]{}, colerr.E(colerr.Invalid, "shape %q for type %s has views of type %s, not %s", e.name, typ, e.view, view)
	}
	return s, nil
}

// Columns looks up the shape for T in r and returns a store holding items.
func Columns[T, V any](r *Registry, items []T) (vector.Store[T, V], error) {
	s, err := Lookup[T, V](r)
	if err != nil {
		return nil, err
	}
	return s.Columns(items), nil
}

// Names returns the sorted names of the registered shapes.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := maps.Keys(r.names)
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}
