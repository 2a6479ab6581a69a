package vector

// Either holds one of two values, a Left or a Right, as with the success
// and failure outcomes of an operation.  It is the value type stored by
// Union and, instantiated over the variant views, the view it returns.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{Left: v}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{Right: v, IsRight: true}
}

const (
	left  uint8 = 0
	right uint8 = 1
)

// Union stores two-variant values as a tag per slot plus one store per
// variant.  Each variant store holds only the values of its variant, in
// the order they were appended.
type Union[L, LV, R, RV any] struct {
	Tags  Tags
	Left  Store[L, LV]
	Right Store[R, RV]
}

var _ Store[Either[int64, string], Either[int64, []byte]] = (*Union[int64, int64, string, []byte])(nil)

func NewUnion[L, LV, R, RV any](l Store[L, LV], r Store[R, RV], enc TagEncoding) *Union[L, LV, R, RV] {
	return &Union[L, LV, R, RV]{Tags: NewTags(enc), Left: l, Right: r}
}

func (u *Union[L, LV, R, RV]) Push(item Either[L, R]) {
	if item.IsRight {
		u.checkAppend(u.Tags.Append(right), u.Right.Len())
		u.Right.Push(item.Right)
		return
	}
	u.checkAppend(u.Tags.Append(left), u.Left.Len())
	u.Left.Push(item.Left)
}

func (u *Union[L, LV, R, RV]) Copy(item *Either[L, R]) {
	if item.IsRight {
		u.checkAppend(u.Tags.Append(right), u.Right.Len())
		u.Right.Copy(&item.Right)
		return
	}
	u.checkAppend(u.Tags.Append(left), u.Left.Len())
	u.Left.Copy(&item.Left)
}

func (*Union[L, LV, R, RV]) checkAppend(off, n int) {
	if off != n {
		invariant("union tag offset %d with %d values in variant", off, n)
	}
}

func (u *Union[L, LV, R, RV]) CopySlice(items []Either[L, R]) {
	for k := range items {
		u.Copy(&items[k])
	}
}

func (u *Union[L, LV, R, RV]) Len() int {
	return u.Tags.Len()
}

func (u *Union[L, LV, R, RV]) IsEmpty() bool {
	return u.Len() == 0
}

func (u *Union[L, LV, R, RV]) Pop() (Either[L, R], bool) {
	tag, _, ok := u.Tags.Pop()
	if !ok {
		return Either[L, R]{}, false
	}
	if tag == right {
		v, ok := u.Right.Pop()
		if !ok {
			invariant("union tagged right with no right values left")
		}
		return Right[L](v), true
	}
	v, ok := u.Left.Pop()
	if !ok {
		invariant("union tagged left with no left values left")
	}
	return Left[L, R](v), true
}

func (u *Union[L, LV, R, RV]) Index(slot int) Either[LV, RV] {
	tag, off := u.Tags.Lookup(slot)
	if tag == right {
		return Right[LV](u.Right.Index(off))
	}
	return Left[LV, RV](u.Left.Index(off))
}

func (u *Union[L, LV, R, RV]) Clear() {
	u.Tags.Clear()
	u.Left.Clear()
	u.Right.Clear()
}

func (u *Union[L, LV, R, RV]) HeapSize() (int, int) {
	tl, tc := u.Tags.HeapSize()
	ll, lc := u.Left.HeapSize()
	rl, rc := u.Right.HeapSize()
	return tl + ll + rl, tc + lc + rc
}
