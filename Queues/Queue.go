package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. Zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current content.
	Shrink()
	//Clear all items while keeping the backing array.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
