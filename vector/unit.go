package vector

// Unit stores values of a type that carries no information.  Only the
// number of values is recorded.
type Unit struct {
	n int
}

var _ Store[struct{}, struct{}] = (*Unit)(nil)

func NewUnit() *Unit {
	return &Unit{}
}

func (u *Unit) Push(struct{}) {
	u.n++
}

func (u *Unit) Copy(*struct{}) {
	u.n++
}

func (u *Unit) CopySlice(items []struct{}) {
	u.n += len(items)
}

func (u *Unit) Len() int {
	return u.n
}

func (u *Unit) IsEmpty() bool {
	return u.n == 0
}

func (u *Unit) Pop() (struct{}, bool) {
	if u.n == 0 {
		return struct{}{}, false
	}
	u.n--
	return struct{}{}, true
}

func (u *Unit) Index(slot int) struct{} {
	checkSlot(slot, u.n)
	return struct{}{}
}

func (u *Unit) Clear() {
	u.n = 0
}

func (*Unit) HeapSize() (int, int) {
	return 0, 0
}
