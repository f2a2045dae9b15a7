// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

// Error represents frame package errors. These errors can be recovered
// by Maybe wrappers.
type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrShape           = Error("frame: dimension mismatch")
	ErrIndexOutOfRange = Error("frame: index out of range")
	ErrZeroLength      = Error("frame: zero length in matrix definition")
	ErrWindow          = Error("frame: window parameter out of range")
	ErrPending         = Error("frame: raw access with a pending plan; Collect first")
	ErrClipLimit       = Error("frame: invalid clip limit")
	ErrQuantile        = Error("frame: quantile out of range")
)

// A Panicker is a function that may panic.
type Panicker func()

// Maybe will recover a panic with a type frame.Error from fn, and
// return this error. Any other panic is re-raised.
func Maybe(fn Panicker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(Error); ok {
				return
			}
			panic(r)
		}
	}()
	fn()
	return
}

// A FramePanicker is a function that returns a Frame and may panic.
type FramePanicker func() Frame

// MaybeFrame will recover a panic with a type frame.Error from fn, and
// return this error. Any other panic is re-raised.
func MaybeFrame(fn FramePanicker) (f Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	f = fn()
	return
}
