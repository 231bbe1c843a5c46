package dstruct

import "strconv"

// InvalidArgumentError is returned when a required argument is absent or malformed.
type InvalidArgumentError struct {
	Name, Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument " + e.Name + ": " + e.Reason
}

// IndexOutOfRangeError is returned when Index is outside [0, Len).
type IndexOutOfRangeError struct {
	Index, Len int
}

func (e *IndexOutOfRangeError) Error() string {
	return "index " + strconv.Itoa(e.Index) + " out of range [0, " + strconv.Itoa(e.Len) + ")"
}

// EmptyError is returned when an element is requested from an empty container.
type EmptyError struct {
	What string
}

func (e *EmptyError) Error() string {
	return e.What + " is empty"
}
