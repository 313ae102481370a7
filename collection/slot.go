/*
 * Copyright (C) 2024-2026 The asynckit authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides utilities over sparse ordered sequences i.e.
// sequences whose positions either hold a value or are holes. Holes are
// represented explicitly by the Slot type rather than by sentinel values so
// that a present zero value and an absent entry can be told apart.
package collection

import "iter"

// Slot describes one position of a sparse sequence: it is either filled with
// a value or a hole. The zero value of Slot is a hole.
type Slot[T any] struct {
	value   T
	present bool
}

// Filled returns a slot holding value.
func Filled[T any](value T) Slot[T] {
	return Slot[T]{value: value, present: true}
}

// Hole returns an absent slot.
func Hole[T any]() Slot[T] {
	return Slot[T]{}
}

// Present states whether the slot holds a value.
func (s Slot[T]) Present() bool {
	return s.present
}

// Get returns the slot value and whether the slot actually holds one.
func (s Slot[T]) Get() (T, bool) {
	return s.value, s.present
}

// OrElse returns the slot value or defaultValue when the slot is a hole.
func (s Slot[T]) OrElse(defaultValue T) T {
	if s.present {
		return s.value
	}
	return defaultValue
}

// Slots returns a dense sparse sequence i.e. one slot per value, no holes.
func Slots[T any](values ...T) []Slot[T] {
	s := make([]Slot[T], len(values))
	for i := range values {
		s[i] = Filled(values[i])
	}
	return s
}

// SparseSlots builds a sparse sequence from optional values: a nil pointer
// becomes a hole (see the field package for constructing optional values).
func SparseSlots[T any](values ...*T) []Slot[T] {
	s := make([]Slot[T], len(values))
	for i := range values {
		if values[i] != nil {
			s[i] = Filled(*values[i])
		}
	}
	return s
}

// FirstPresent returns the position of the first filled slot and whether one
// exists.
func FirstPresent[S ~[]Slot[E], E any](s S) (int, bool) {
	return NextPresent(s, 0)
}

// NextPresent returns the position of the first filled slot at or after from
// and whether one exists.
func NextPresent[S ~[]Slot[E], E any](s S, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(s); i++ {
		if s[i].present {
			return i, true
		}
	}
	return -1, false
}

// CountPresent returns the number of filled slots in s.
func CountPresent[S ~[]Slot[E], E any](s S) (count int) {
	for i := range s {
		if s[i].present {
			count++
		}
	}
	return
}

// PresentValues returns the values of all filled slots of s in order.
func PresentValues[S ~[]Slot[E], E any](s S) []E {
	values := make([]E, 0, len(s))
	for v := range PresentSequence(s) {
		values = append(values, v)
	}
	return values
}

// PresentSequence returns an iterator over the values of filled slots of s,
// skipping holes.
func PresentSequence[S ~[]Slot[E], E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := range s {
			if s[i].present && !yield(s[i].value) {
				return
			}
		}
	}
}
