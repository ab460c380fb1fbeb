// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a generic undo / redo manager that records
// a full copy of the state after each action.
package undo

import (
	"sync"

	"cogentcore.org/scenes/base/errors"
	"github.com/jinzhu/copier"
)

// DefaultMaxRecords is the default maximum number of records kept
// by a [Manager]; the oldest records are dropped beyond that.
var DefaultMaxRecords = 100

// Record is one undo record, associated with one action that changed state
// from the previous record to this one.
type Record[T any] struct {

	// Action is a description of this action, for the user to see.
	Action string

	// State is a full copy of the state after the action.
	State T
}

// Manager is the undo manager, managing the undo / redo process.
// The state at the current index is the current state of the system.
type Manager[T any] struct {

	// Index is the current index in the undo records. The record at
	// this index is the one that is undone by [Manager.Undo].
	Index int

	// Records is the list of saved state / action records.
	Records []*Record[T]

	// MaxRecords is the maximum number of records to keep;
	// if 0, [DefaultMaxRecords] is used.
	MaxRecords int

	// Mu is the mutex that protects updates.
	Mu sync.Mutex
}

// Reset clears all records and saves the given state as the initial one,
// which can not itself be undone.
func (um *Manager[T]) Reset(action string, state T) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	um.Records = []*Record[T]{{Action: action, State: deepCopy(state)}}
	um.Index = 0
}

// Save saves a new action as the next action to be undone, with the state
// of the system after the action. Any records that could have been redone
// are discarded. The state is deep copied.
func (um *Manager[T]) Save(action string, state T) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Records == nil {
		um.Records = []*Record[T]{{Action: action, State: deepCopy(state)}}
		um.Index = 0
		return
	}
	um.Records = append(um.Records[:um.Index+1], &Record[T]{Action: action, State: deepCopy(state)})
	um.Index++
	mx := um.MaxRecords
	if mx == 0 {
		mx = DefaultMaxRecords
	}
	if over := len(um.Records) - mx; over > 0 {
		um.Records = um.Records[over:]
		um.Index -= over
	}
}

// HasUndoAvailable returns true if there is at least one undo record available.
func (um *Manager[T]) HasUndoAvailable() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Index > 0
}

// HasRedoAvailable returns true if there is at least one redo record available.
func (um *Manager[T]) HasRedoAvailable() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Index < len(um.Records)-1
}

// Undo undoes the action at the current index, returning its description
// and a copy of the state to restore, from before the action.
// If there is nothing to undo, ok is false.
func (um *Manager[T]) Undo() (action string, state T, ok bool) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index <= 0 {
		return
	}
	action = um.Records[um.Index].Action
	um.Index--
	return action, deepCopy(um.Records[um.Index].State), true
}

// Redo redoes the next action, returning its description and a copy of
// the state after it. If there is nothing to redo, ok is false.
func (um *Manager[T]) Redo() (action string, state T, ok bool) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index >= len(um.Records)-1 {
		return
	}
	um.Index++
	rec := um.Records[um.Index]
	return rec.Action, deepCopy(rec.State), true
}

// deepCopy returns an independent copy of the state, so that later changes
// to either one do not affect the other.
func deepCopy[T any](state T) T {
	var cp T
	if errors.Log(copier.CopyWithOption(&cp, &state, copier.Option{DeepCopy: true})) != nil {
		return state
	}
	return cp
}
