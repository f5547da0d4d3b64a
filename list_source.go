package listkit

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrIndexOutOfRange is returned for element indices outside the
	// collection.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnsupported is returned when a source cannot perform an operation.
	ErrUnsupported = errors.New("operation not supported")
)

// ElementHandle is whatever a source hands out for one element.
type ElementHandle any

// ElementSource is the ordered collection a ListView shows. The list never
// owns the elements; it reads through Get and asks for mutations through
// Move, Insert and Remove.
type ElementSource interface {
	Count() int
	Get(index int) (ElementHandle, error)
	// Move relocates one element, keeping the order of all others.
	Move(from, to int) error
	// Insert adds a new element at index (index == Count appends).
	Insert(index int) error
	Remove(index int) error
}

// Duplicator is implemented by sources that can copy an element in place.
// The copy is inserted directly after the original.
type Duplicator interface {
	Duplicate(index int) error
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, count)
	}
	return nil
}

// moveInSlice relocates s[from] to position to.
func moveInSlice[T any](s []T, from, to int) {
	if from == to {
		return
	}
	v := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
}

func insertInSlice[T any](s []T, index int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = v
	return s
}

func removeFromSlice[T any](s []T, index int) []T {
	copy(s[index:], s[index+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// Property is a handle to one structured element with named fields.
type Property interface {
	Field(name string) (string, bool)
}

// PropertyArray is an externally owned ordered array of properties, the
// way serialized arrays are exposed by an editor host.
type PropertyArray interface {
	ArraySize() int
	ArrayElement(index int) Property
	MoveArrayElement(from, to int) bool
	// InsertArrayElement inserts a copy of the element at index directly
	// after it, or a blank element when the array is empty.
	InsertArrayElement(index int)
	DeleteArrayElement(index int)
}

// PropertyArraySource adapts a PropertyArray.
type PropertyArraySource struct {
	arr PropertyArray
}

// NewPropertyArraySource wraps arr.
func NewPropertyArraySource(arr PropertyArray) *PropertyArraySource {
	return &PropertyArraySource{arr: arr}
}

func (s *PropertyArraySource) Count() int { return s.arr.ArraySize() }

func (s *PropertyArraySource) Get(index int) (ElementHandle, error) {
	if err := checkIndex(index, s.arr.ArraySize()); err != nil {
		return nil, err
	}
	return s.arr.ArrayElement(index), nil
}

func (s *PropertyArraySource) Move(from, to int) error {
	n := s.arr.ArraySize()
	if err := checkIndex(from, n); err != nil {
		return err
	}
	if err := checkIndex(to, n); err != nil {
		return err
	}
	if !s.arr.MoveArrayElement(from, to) {
		return fmt.Errorf("move %d to %d: rejected by array", from, to)
	}
	return nil
}

// Insert adds an element at index by duplicating its neighbour, the only
// insertion property arrays offer. A copy of element 0 lands at index 1,
// which is indistinguishable from inserting it at 0.
func (s *PropertyArraySource) Insert(index int) error {
	n := s.arr.ArraySize()
	if index < 0 || index > n {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, n)
	}
	s.arr.InsertArrayElement(max(index-1, 0))
	return nil
}

func (s *PropertyArraySource) Remove(index int) error {
	if err := checkIndex(index, s.arr.ArraySize()); err != nil {
		return err
	}
	s.arr.DeleteArrayElement(index)
	return nil
}

// Duplicate inserts a copy of the element after it.
func (s *PropertyArraySource) Duplicate(index int) error {
	if err := checkIndex(index, s.arr.ArraySize()); err != nil {
		return err
	}
	s.arr.InsertArrayElement(index)
	return nil
}

// Record is a property with string fields.
type Record map[string]string

// Field returns the named field.
func (r Record) Field(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// RecordArray is an in-memory PropertyArray of records.
type RecordArray struct {
	Records []Record
}

func (a *RecordArray) ArraySize() int { return len(a.Records) }

func (a *RecordArray) ArrayElement(index int) Property { return a.Records[index] }

func (a *RecordArray) MoveArrayElement(from, to int) bool {
	if from < 0 || from >= len(a.Records) || to < 0 || to >= len(a.Records) {
		return false
	}
	moveInSlice(a.Records, from, to)
	return true
}

func (a *RecordArray) InsertArrayElement(index int) {
	if len(a.Records) == 0 {
		a.Records = append(a.Records, Record{})
		return
	}
	a.Records = insertInSlice(a.Records, index+1, maps.Clone(a.Records[index]))
}

func (a *RecordArray) DeleteArrayElement(index int) {
	a.Records = removeFromSlice(a.Records, index)
}

// HandleListSource adapts an externally owned list of property handles.
// It cannot copy handles, so it does not implement Duplicator.
type HandleListSource struct {
	list *[]Property
	// New creates the handle inserted by Insert. Nil makes Insert fail
	// with ErrUnsupported.
	New func() Property
}

// NewHandleListSource wraps list.
func NewHandleListSource(list *[]Property, newHandle func() Property) *HandleListSource {
	return &HandleListSource{list: list, New: newHandle}
}

func (s *HandleListSource) Count() int { return len(*s.list) }

func (s *HandleListSource) Get(index int) (ElementHandle, error) {
	if err := checkIndex(index, len(*s.list)); err != nil {
		return nil, err
	}
	return (*s.list)[index], nil
}

func (s *HandleListSource) Move(from, to int) error {
	n := len(*s.list)
	if err := checkIndex(from, n); err != nil {
		return err
	}
	if err := checkIndex(to, n); err != nil {
		return err
	}
	moveInSlice(*s.list, from, to)
	return nil
}

func (s *HandleListSource) Insert(index int) error {
	if s.New == nil {
		return fmt.Errorf("insert into handle list: %w", ErrUnsupported)
	}
	n := len(*s.list)
	if index < 0 || index > n {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, n)
	}
	*s.list = insertInSlice(*s.list, index, s.New())
	return nil
}

func (s *HandleListSource) Remove(index int) error {
	if err := checkIndex(index, len(*s.list)); err != nil {
		return err
	}
	*s.list = removeFromSlice(*s.list, index)
	return nil
}

// SliceSource adapts an externally owned slice of values.
type SliceSource[T any] struct {
	items *[]T
	// New creates the value inserted by Insert. Nil inserts the zero value.
	New func() T
}

// NewSliceSource wraps items.
func NewSliceSource[T any](items *[]T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

func (s *SliceSource[T]) Count() int { return len(*s.items) }

func (s *SliceSource[T]) Get(index int) (ElementHandle, error) {
	if err := checkIndex(index, len(*s.items)); err != nil {
		return nil, err
	}
	return (*s.items)[index], nil
}

func (s *SliceSource[T]) Move(from, to int) error {
	n := len(*s.items)
	if err := checkIndex(from, n); err != nil {
		return err
	}
	if err := checkIndex(to, n); err != nil {
		return err
	}
	moveInSlice(*s.items, from, to)
	return nil
}

func (s *SliceSource[T]) Insert(index int) error {
	n := len(*s.items)
	if index < 0 || index > n {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, n)
	}
	var v T
	if s.New != nil {
		v = s.New()
	}
	*s.items = insertInSlice(*s.items, index, v)
	return nil
}

func (s *SliceSource[T]) Remove(index int) error {
	if err := checkIndex(index, len(*s.items)); err != nil {
		return err
	}
	*s.items = removeFromSlice(*s.items, index)
	return nil
}

// Duplicate inserts a copy of the value after it.
func (s *SliceSource[T]) Duplicate(index int) error {
	if err := checkIndex(index, len(*s.items)); err != nil {
		return err
	}
	*s.items = insertInSlice(*s.items, index+1, (*s.items)[index])
	return nil
}
