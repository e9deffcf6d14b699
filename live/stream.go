package live

import (
	"sort"
	"sync"
)

// DefaultMaxPoints bounds a stream created without a limit.
const DefaultMaxPoints = 4096

func NewStream(maxPoints int) Stream {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	return &streamImpl{
		maxPoints: maxPoints,
	}
}

type streamImpl struct {
	maxPoints int

	lock   sync.RWMutex
	points []Point
}

// Append adds points, keeping the buffer ordered by time. Late points are
// inserted after any sample with the same time. The oldest points are
// dropped beyond maxPoints.
func (impl *streamImpl) Append(points ...Point) {
	if len(points) == 0 {
		return
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	for _, p := range points {
		n := len(impl.points)
		if n == 0 || impl.points[n-1].Time <= p.Time {
			impl.points = append(impl.points, p)

			continue
		}

		idx := sort.Search(n, func(i int) bool {
			return impl.points[i].Time > p.Time
		})

		impl.points = append(impl.points, Point{})
		copy(impl.points[idx+1:], impl.points[idx:])
		impl.points[idx] = p
	}

	if over := len(impl.points) - impl.maxPoints; over > 0 {
		impl.points = append([]Point{}, impl.points[over:]...)
	}
}

func (impl *streamImpl) Snapshot() []Point {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return append([]Point(nil), impl.points...)
}

// Since returns the points at or after t.
func (impl *streamImpl) Since(t float64) []Point {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	idx := sort.Search(len(impl.points), func(i int) bool {
		return impl.points[i].Time >= t
	})

	return append([]Point(nil), impl.points[idx:]...)
}

func (impl *streamImpl) Latest() (p Point, ok bool) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	if n := len(impl.points); n > 0 {
		p, ok = impl.points[n-1], true
	}

	return
}

func (impl *streamImpl) Len() int {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return len(impl.points)
}
