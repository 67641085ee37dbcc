package io

// Queue is an in-memory FIFO of values.
// Values sent to the queue are appended, values received are taken
// from the front.
type Queue struct {
	ReadIndex int
	Data      []int
}

var _ Channel = (*Queue)(nil)

// NewQueue creates a queue preloaded with values.
func NewQueue(values ...int) (queue *Queue) {
	queue = &Queue{
		Data: append([]int(nil), values...),
	}
	return
}

// Rewind restarts reading from the first value.
func (queue *Queue) Rewind() {
	queue.ReadIndex = 0
}

// Receive returns the next unread value.
// Returns ErrInputEmpty once all values have been read.
func (queue *Queue) Receive() (value int, err error) {
	if queue.ReadIndex >= len(queue.Data) {
		err = ErrInputEmpty
		return
	}

	value = queue.Data[queue.ReadIndex]
	queue.ReadIndex++

	return
}

// Send appends a value.
func (queue *Queue) Send(value int) (err error) {
	queue.Data = append(queue.Data, value)

	return
}

// Len returns the number of unread values.
func (queue *Queue) Len() int {
	return len(queue.Data) - queue.ReadIndex
}
