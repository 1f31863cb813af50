package datastructure

import (
	"errors"
	"fmt"
)

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is reports whether target is the error code, so errors.Is(err, ErrEmptyQueue) works.
func (e *Error) Is(target error) bool {
	return e.code == target
}

func (e *Error) Code() error {
	return e.code
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

var (
	// ErrDuplicateItem is returned by Insert when the item is already queued
	ErrDuplicateItem = errors.New("item already exists in the heap")
	// ErrEmptyQueue is returned by PeekMin / RemoveMin on an empty heap
	ErrEmptyQueue = errors.New("heap is empty")
	// ErrItemNotFound is returned by ChangePriority when the item is not queued
	ErrItemNotFound = errors.New("item not found in the heap")
	// ErrCorrupted is returned by Validate when the heap array and the position index disagree
	ErrCorrupted = errors.New("heap is corrupted")
)
