// Package randomtest provides a scripted random.Source for tests.
package randomtest

import "github.com/robalobadob/wordle-solver/internal/random"

// Queue returns queued values from Intn in order, then 0 once exhausted.
// Values are reduced modulo n so a queued value is always a valid index.
type Queue struct {
	values []int
	next   int
	// Calls records the n passed to every Intn call.
	Calls []int
}

var _ random.Source = (*Queue)(nil)

// NewQueue creates a Queue preloaded with values.
func NewQueue(values ...int) *Queue {
	return &Queue{values: values}
}

// Push appends values to the queue.
func (q *Queue) Push(values ...int) {
	q.values = append(q.values, values...)
}

// Intn returns the next queued value.
func (q *Queue) Intn(n int) int {
	q.Calls = append(q.Calls, n)
	if n <= 0 || q.next >= len(q.values) {
		return 0
	}
	v := q.values[q.next]
	q.next++
	return v % n
}
