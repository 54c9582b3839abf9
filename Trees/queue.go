package Trees

// nodeQueue is a growable circular array queue used for level-order walks.
type nodeQueue[E any] struct {
	sz, head, tail uint
	content        []E
}

func makeNodeQueue[E any](initCap uint) *nodeQueue[E] {
	return &nodeQueue[E]{content: make([]E, initCap|1)}
}

func (q *nodeQueue[E]) empty() bool {
	return q.sz == 0
}

func (q *nodeQueue[E]) resize(newLen uint) {
	nc := make([]E, newLen)
	if q.head < q.tail {
		copy(nc, q.content[q.head:q.tail])
	} else {
		n := copy(nc, q.content[q.head:])
		copy(nc[n:], q.content[:q.tail])
	}
	q.head, q.tail = 0, q.sz
	q.content = nc
}

func (q *nodeQueue[E]) push(item E) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz*3/2 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

// pop panics on an empty queue; callers check empty first.
func (q *nodeQueue[E]) pop() E {
	if q.empty() {
		panic("pop on empty nodeQueue")
	}
	t := q.content[q.head]
	q.content[q.head] = *new(E)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return t
}
