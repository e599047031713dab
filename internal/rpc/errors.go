/*
   Licensed under the MIT License <http://opensource.org/licenses/MIT>.

   Copyright © 2023-2026 TierStore Project Contributors

   Permission is hereby granted, free of charge, to any person obtaining a copy
   of this software and associated documentation files (the "Software"), to deal
   in the Software without restriction, including without limitation the rights
   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
   copies of the Software, and to permit persons to whom the Software is
   furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in all
   copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
   SOFTWARE
*/

package rpc

import (
	"errors"
	"fmt"
)

// The client-facing error taxonomy. Transport implementations must map their
// raw failures onto these kinds so that the session can decide between
// "reconnect and retry" and "this call cannot succeed".

// ErrNotFound : the named file, block, dependency or table does not exist
var ErrNotFound = errors.New("not found")

// ErrNoWorker : the master has no worker matching the request
var ErrNoWorker = errors.New("no worker available")

// ConnError : the channel to the remote end failed. Never fatal to the
// session; it clears connected state and heals on the next connect.
type ConnError struct {
	Op  string
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("connection fault in %s [%v]", e.Op, e.Err)
}

func (e *ConnError) Unwrap() error {
	return e.Err
}

// NewConnError : wrap a transport failure observed during op
func NewConnError(op string, err error) *ConnError {
	return &ConnError{Op: op, Err: err}
}

// IsConnError : true if err is (or wraps) a transport fault
func IsConnError(err error) bool {
	var ce *ConnError
	return errors.As(err, &ce)
}

// DeclineError : the remote end refused the operation for a domain reason,
// e.g. a checkpoint cannot be taken in the file's current state
type DeclineError struct {
	Op     string
	Reason string
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("%s declined [%s]", e.Op, e.Reason)
}

// IsDeclined : true if err is (or wraps) a remote refusal
func IsDeclined(err error) bool {
	var de *DeclineError
	return errors.As(err, &de)
}
