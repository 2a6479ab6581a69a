package vector

// Option is a value that may be absent.  It is the value type stored by
// Optional and, instantiated over the payload view, the view it returns.
type Option[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Valid: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

const (
	absent  uint8 = 0
	present uint8 = 1
)

// Optional stores optional values as a tag per slot plus a payload store
// holding only the values that are present.
type Optional[T, V any] struct {
	Tags   Tags
	Values Store[T, V]
}

var _ Store[Option[int64], Option[int64]] = (*Optional[int64, int64])(nil)

func NewOptional[T, V any](values Store[T, V], enc TagEncoding) *Optional[T, V] {
	return &Optional[T, V]{Tags: NewTags(enc), Values: values}
}

func (o *Optional[T, V]) Push(item Option[T]) {
	if !item.Valid {
		o.Tags.Append(absent)
		return
	}
	o.checkAppend(o.Tags.Append(present))
	o.Values.Push(item.Value)
}

func (o *Optional[T, V]) Copy(item *Option[T]) {
	if !item.Valid {
		o.Tags.Append(absent)
		return
	}
	o.checkAppend(o.Tags.Append(present))
	o.Values.Copy(&item.Value)
}

func (o *Optional[T, V]) checkAppend(off int) {
	if n := o.Values.Len(); off != n {
		invariant("optional tag offset %d with %d values present", off, n)
	}
}

func (o *Optional[T, V]) CopySlice(items []Option[T]) {
	for k := range items {
		o.Copy(&items[k])
	}
}

func (o *Optional[T, V]) Len() int {
	return o.Tags.Len()
}

func (o *Optional[T, V]) IsEmpty() bool {
	return o.Len() == 0
}

// Pop returns a None value with a true result when the last item was
// absent and a false result only when the store is empty.
func (o *Optional[T, V]) Pop() (Option[T], bool) {
	tag, _, ok := o.Tags.Pop()
	if !ok {
		return Option[T]{}, false
	}
	if tag == absent {
		return None[T](), true
	}
	v, ok := o.Values.Pop()
	if !ok {
		invariant("optional tagged present with no values left")
	}
	return Some(v), true
}

func (o *Optional[T, V]) Index(slot int) Option[V] {
	tag, off := o.Tags.Lookup(slot)
	if tag == absent {
		return Option[V]{}
	}
	return Some(o.Values.Index(off))
}

func (o *Optional[T, V]) Clear() {
	o.Tags.Clear()
	o.Values.Clear()
}

func (o *Optional[T, V]) HeapSize() (int, int) {
	tl, tc := o.Tags.HeapSize()
	vl, vc := o.Values.HeapSize()
	return tl + vl, tc + vc
}
