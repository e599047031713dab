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
	"sync"
)

// Transport produces RPC clients for a given wire protocol. Exactly one
// transport is active per process; wire packages register themselves from
// an init function, same as database/sql drivers.
type Transport interface {
	Name() string
	DialMaster(addr NetAddress) (MasterClient, error)
	DialWorker(addr NetAddress) (WorkerClient, error)
}

var (
	transportMu sync.RWMutex
	transport   Transport
)

// RegisterTransport installs the process-wide transport. Registering twice
// panics; it signals two wire packages linked into one binary.
func RegisterTransport(t Transport) {
	transportMu.Lock()
	defer transportMu.Unlock()
	if t == nil {
		panic("rpc: RegisterTransport with nil transport")
	}
	if transport != nil {
		panic("rpc: transport already registered [" + transport.Name() + "]")
	}
	transport = t
}

// ActiveTransport returns the registered transport, or an error when no wire
// package was linked in
func ActiveTransport() (Transport, error) {
	transportMu.RLock()
	defer transportMu.RUnlock()
	if transport == nil {
		return nil, errors.New("rpc: no transport registered")
	}
	return transport, nil
}
