package vector

// Tuple2 is a pair of values.  It is both the value type stored by a
// Record2 and, instantiated over the field views, the view it returns.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is the three-field analog of Tuple2.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Record2 stores pairs with one nested store per field.  The field stores
// always have the same length.
type Record2[A, AV, B, BV any] struct {
	First  Store[A, AV]
	Second Store[B, BV]
}

var _ Store[Tuple2[int64, string], Tuple2[int64, []byte]] = (*Record2[int64, int64, string, []byte])(nil)

func NewRecord2[A, AV, B, BV any](first Store[A, AV], second Store[B, BV]) *Record2[A, AV, B, BV] {
	return &Record2[A, AV, B, BV]{First: first, Second: second}
}

func (r *Record2[A, AV, B, BV]) Push(item Tuple2[A, B]) {
	r.First.Push(item.First)
	r.Second.Push(item.Second)
}

func (r *Record2[A, AV, B, BV]) Copy(item *Tuple2[A, B]) {
	r.First.Copy(&item.First)
	r.Second.Copy(&item.Second)
}

func (r *Record2[A, AV, B, BV]) CopySlice(items []Tuple2[A, B]) {
	for k := range items {
		r.Copy(&items[k])
	}
}

func (r *Record2[A, AV, B, BV]) Len() int {
	return r.First.Len()
}

func (r *Record2[A, AV, B, BV]) IsEmpty() bool {
	return r.Len() == 0
}

func (r *Record2[A, AV, B, BV]) Pop() (Tuple2[A, B], bool) {
	first, ok1 := r.First.Pop()
	second, ok2 := r.Second.Pop()
	if ok1 != ok2 {
		invariant("record fields out of step: popped %t, %t", ok1, ok2)
	}
	if !ok1 {
		return Tuple2[A, B]{}, false
	}
	return Tuple2[A, B]{first, second}, true
}

func (r *Record2[A, AV, B, BV]) Index(slot int) Tuple2[AV, BV] {
	checkSlot(slot, r.Len())
	return Tuple2[AV, BV]{r.First.Index(slot), r.Second.Index(slot)}
}

func (r *Record2[A, AV, B, BV]) Clear() {
	r.First.Clear()
	r.Second.Clear()
}

func (r *Record2[A, AV, B, BV]) HeapSize() (int, int) {
	l0, c0 := r.First.HeapSize()
	l1, c1 := r.Second.HeapSize()
	return l0 + l1, c0 + c1
}

// Record3 stores triples with one nested store per field.
type Record3[A, AV, B, BV, C, CV any] struct {
	First  Store[A, AV]
	Second Store[B, BV]
	Third  Store[C, CV]
}

func NewRecord3[A, AV, B, BV, C, CV any](first Store[A, AV], second Store[B, BV], third Store[C, CV]) *Record3[A, AV, B, BV, C, CV] {
	return &Record3[A, AV, B, BV, C, CV]{First: first, Second: second, Third: third}
}

func (r *Record3[A, AV, B, BV, C, CV]) Push(item Tuple3[A, B, C]) {
	r.First.Push(item.First)
	r.Second.Push(item.Second)
	r.Third.Push(item.Third)
}

func (r *Record3[A, AV, B, BV, C, CV]) Copy(item *Tuple3[A, B, C]) {
	r.First.Copy(&item.First)
	r.Second.Copy(&item.Second)
	r.Third.Copy(&item.Third)
}

func (r *Record3[A, AV, B, BV, C, CV]) CopySlice(items []Tuple3[A, B, C]) {
	for k := range items {
		r.Copy(&items[k])
	}
}

func (r *Record3[A, AV, B, BV, C, CV]) Len() int {
	return r.First.Len()
}

func (r *Record3[A, AV, B, BV, C, CV]) IsEmpty() bool {
	return r.Len() == 0
}

func (r *Record3[A, AV, B, BV, C, CV]) Pop() (Tuple3[A, B, C], bool) {
	first, ok1 := r.First.Pop()
	second, ok2 := r.Second.Pop()
	third, ok3 := r.Third.Pop()
	if ok1 != ok2 || ok1 != ok3 {
		invariant("record fields out of step: popped %t, %t, %t", ok1, ok2, ok3)
	}
	if !ok1 {
		return Tuple3[A, B, C]{}, false
	}
	return Tuple3[A, B, C]{first, second, third}, true
}

func (r *Record3[A, AV, B, BV, C, CV]) Index(slot int) Tuple3[AV, BV, CV] {
	checkSlot(slot, r.Len())
	return Tuple3[AV, BV, CV]{r.First.Index(slot), r.Second.Index(slot), r.Third.Index(slot)}
}

func (r *Record3[A, AV, B, BV, C, CV]) Clear() {
	r.First.Clear()
	r.Second.Clear()
	r.Third.Clear()
}

func (r *Record3[A, AV, B, BV, C, CV]) HeapSize() (int, int) {
	l0, c0 := r.First.HeapSize()
	l1, c1 := r.Second.HeapSize()
	l2, c2 := r.Third.HeapSize()
	return l0 + l1 + l2, c0 + c1 + c2
}
