/*
 * Copyright (C) 2024-2026 The asynckit authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fold provides an asynchronous sequential fold over a sparse ordered
// sequence. Each step of the fold is driven by an explicit continuation so
// that a step may finish its work at an arbitrary later time (timers, I/O,
// external events) before the fold advances to the next filled slot.
package fold

import (
	"github.com/go-logr/logr"
	"go.uber.org/atomic"

	"github.com/asynckit-go/asynckit/collection"
)

// Continuation resumes a suspended fold. Calling it with a value makes that
// value the accumulator for the next step (or the final result when no filled
// slot remains); calling it with no value leaves the accumulator unchanged.
// Only the first invocation for a given step has any effect; subsequent calls
// are ignored.
type Continuation[T any] func(next ...T)

// StepFunc is invoked once per filled slot beyond the seed. It receives the
// accumulator, the current slot value, the step index, the full original
// sequence (holes included, never a filtered view) and the continuation which
// must eventually be called for the fold to advance.
type StepFunc[T any] func(previous, current T, index int, slots []collection.Slot[T], resume Continuation[T])

// CompletionFunc receives the final accumulator, exactly once per fold.
type CompletionFunc[T any] func(result T)

// Phases of a dispatched step. A step starts in phaseDispatching; the driver
// moves it to phaseSuspended when the step body returns without resuming,
// while the continuation moves it to phaseResumed. Whichever transition loses
// the race is responsible for not advancing the fold a second time.
const (
	phaseDispatching int32 = iota
	phaseSuspended
	phaseResumed
)

// iteration holds the transient state of one in-flight fold. It is owned by
// exactly one call to Reduce and never shared across calls.
type iteration[T any] struct {
	logger      logr.Logger
	slots       []collection.Slot[T]
	step        StepFunc[T]
	onComplete  CompletionFunc[T]
	accumulator T
	cursor      int
	index       int
}

// Reduce starts an asynchronous sequential fold over the filled slots of
// slots. The initial accumulator is *initial when provided, with step indices
// starting at 0; otherwise the first filled slot is consumed as the seed and
// step indices start at 1. When the seed is the only filled slot (or initial
// is provided and no slot is filled), onComplete is invoked directly and the
// step function never runs.
//
// Validation failures are reported synchronously through the returned error;
// a nil return means the fold was dispatched (or completed synchronously).
// Once dispatched, progress is driven exclusively by continuation calls: the
// step function for a given slot is not invoked until the previous step's
// continuation has fired, and after the last continuation fires onComplete is
// invoked exactly once with the resulting accumulator. A continuation that
// never fires suspends that fold forever; detecting or timing out such a
// stall is the caller's responsibility. Panics raised by the callbacks are
// not recovered.
func Reduce[T any](slots []collection.Slot[T], step StepFunc[T], onComplete CompletionFunc[T], initial *T) error {
	return ReduceWithLogger(logr.Discard(), slots, step, onComplete, initial)
}

// ReduceWithLogger behaves like Reduce but traces seeding, step dispatches
// and completion on logger at verbosity 1.
func ReduceWithLogger[T any](logger logr.Logger, slots []collection.Slot[T], step StepFunc[T], onComplete CompletionFunc[T], initial *T) error {
	it := &iteration[T]{
		logger:     logger,
		slots:      slots,
		step:       step,
		onComplete: onComplete,
	}
	err := it.validate(initial)
	if err != nil {
		return err
	}
	if initial != nil {
		it.accumulator = *initial
		it.logger.V(1).Info("seeding fold with initial value", "index", 0)
	} else {
		seedAt, _ := collection.FirstPresent(slots)
		it.accumulator, _ = slots[seedAt].Get()
		it.cursor = seedAt + 1
		it.index = 1
		it.logger.V(1).Info("seeding fold from first filled slot", "position", seedAt)
	}
	it.run()
	return nil
}

// run dispatches steps until the fold suspends or completes. It is entered
// once by ReduceWithLogger and re-entered by continuations that fire after
// their step body has returned; synchronous continuations are absorbed by the
// loop instead so that chains of immediate resumes do not grow the stack.
func (it *iteration[T]) run() {
	for {
		position, found := collection.NextPresent(it.slots, it.cursor)
		if !found {
			it.finish()
			return
		}
		current, _ := it.slots[position].Get()
		it.cursor = position + 1
		index := it.index
		it.index++

		phase := atomic.NewInt32(phaseDispatching)
		fired := atomic.NewBool(false)
		resume := func(next ...T) {
			if !fired.CompareAndSwap(false, true) {
				// Repeated continuation calls for one step are ignored.
				return
			}
			if len(next) > 0 {
				it.accumulator = next[0]
			}
			if phase.CompareAndSwap(phaseDispatching, phaseResumed) {
				// Still within the step body; the driver loop advances.
				return
			}
			it.run()
		}

		it.logger.V(1).Info("dispatching step", "step", index, "position", position)
		it.step(it.accumulator, current, index, it.slots, resume)
		if phase.CompareAndSwap(phaseDispatching, phaseSuspended) {
			// The step body returned without resuming; the continuation
			// re-enters run when it eventually fires.
			return
		}
	}
}

func (it *iteration[T]) finish() {
	it.logger.V(1).Info("fold complete", "steps", it.index)
	it.onComplete(it.accumulator)
}
