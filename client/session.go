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

// Package client drives one session against a tier-store cluster: lazy
// connection management, metadata caching, block lock multiplexing, the
// per-tier space ledger, and the short-circuit local read path.
package client

import (
	"errors"
	"sync"

	"github.com/tierstore/tierstore/common"
	"github.com/tierstore/tierstore/common/log"
	"github.com/tierstore/tierstore/internal/rpc"

	"go.uber.org/atomic"
)

type connState int

const (
	// stateDisconnected : no usable master channel
	stateDisconnected connState = iota
	// stateNoWorker : master usable, no worker attached
	stateNoWorker
	// stateWithWorker : master usable and a worker channel open
	stateWithWorker
)

// Session is one client's stateful view of the cluster. All public
// operations serialize on one session-wide mutex; callers needing
// parallel RPCs should open independent sessions.
type Session struct {
	mu   sync.Mutex
	opts Options

	transport  rpc.Transport
	masterAddr rpc.NetAddress
	coordMode  bool

	state  connState
	master rpc.MasterClient
	userID int64

	worker            rpc.WorkerClient
	workerAddr        rpc.NetAddress
	workerIsLocal     bool
	dataRoot          string
	userTempPath      string
	userUnderTempPath string

	// metadata cache, two independently refreshed indexes
	byID   map[int32]*rpc.FileInfo
	byPath map[string]*rpc.FileInfo

	// block lock table: block id -> locally issued handles
	locks     map[int64]map[int32]struct{}
	handleCtr atomic.Int32

	// space ledger: tier id -> reserved-but-unspent bytes
	ledger map[int64]int64

	// per-tier directory info, fetched once per tier
	tierDirs map[int64]*rpc.TierDirInfo
}

// New builds a session against the configured address using the
// process-wide registered transport. No connection is made until the
// first operation.
func New(opts Options) (*Session, error) {
	transport, err := rpc.ActiveTransport()
	if err != nil {
		return nil, err
	}
	return NewWithTransport(opts, transport)
}

// NewWithTransport is New with an explicit transport, used by tests and
// embedders that manage their own wiring
func NewWithTransport(opts Options, transport rpc.Transport) (*Session, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	masterAddr, coordMode, err := ParseAddress(opts.Address)
	if err != nil {
		return nil, err
	}

	log.Info("Session::NewWithTransport : master %s, coordination mode %t", masterAddr.String(), coordMode)
	return &Session{
		opts:       opts,
		transport:  transport,
		masterAddr: masterAddr,
		coordMode:  coordMode,
		state:      stateDisconnected,
		byID:       make(map[int32]*rpc.FileInfo),
		byPath:     make(map[string]*rpc.FileInfo),
		locks:      make(map[int64]map[int32]struct{}),
		ledger:     make(map[int64]int64),
		tierDirs:   make(map[int64]*rpc.TierDirInfo),
	}, nil
}

// Connect establishes the session eagerly. Operations connect lazily on
// their own, so calling this is optional.
func (s *Session) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connect()
}

// connect is the idempotent lazy connect. Caller holds s.mu.
//
// A failed identity fetch leaves the master channel open but the session
// disconnected; the channel is reused on the next attempt. Worker
// discovery and attachment failures are never fatal, metadata-only
// operations must keep working without a worker.
func (s *Session) connect() error {
	if s.state != stateDisconnected {
		return nil
	}

	if s.master == nil {
		master, err := s.transport.DialMaster(s.masterAddr)
		if err != nil {
			log.Err("Session::connect : Failed to dial master %s [%v]", s.masterAddr.String(), err)
			return err
		}
		if err = master.Connect(); err != nil {
			log.Err("Session::connect : Failed to open master channel [%v]", err)
			return err
		}
		s.master = master
	}

	userID, err := s.master.GetUserID()
	if err != nil {
		log.Err("Session::connect : Failed to obtain session identity [%v]", err)
		return err
	}
	s.userID = userID
	log.Debug("Session::connect : connected to master %s as user %d", s.masterAddr.String(), userID)

	// a worker left over from before the last invalidation is stale
	if s.worker != nil {
		_ = s.worker.Close()
		s.worker = nil
	}
	s.state = stateNoWorker

	workerAddr, local, err := s.discoverWorker()
	if err != nil {
		return err
	}
	if workerAddr == nil {
		log.Info("Session::connect : no worker available, metadata-only session")
		return nil
	}
	s.attachWorker(*workerAddr, local)
	return nil
}

// discoverWorker prefers a worker pinned to this machine's canonical name
// and falls back to any worker. A local-lookup fault does not stop the
// remote fallback, but a transport fault on either lookup invalidates the
// master so the next operation redials instead of trusting a dead channel.
// Caller holds s.mu and an open master.
func (s *Session) discoverWorker() (*rpc.NetAddress, bool, error) {
	var connFault error

	hostname, err := common.GetLocalHostName()
	if err == nil {
		addr, lerr := s.master.GetWorker(false, hostname)
		if lerr == nil {
			return addr, true, nil
		}
		if errors.Is(lerr, rpc.ErrNoWorker) {
			log.Debug("Session::discoverWorker : no worker on %s, trying remote", hostname)
		} else {
			log.Warn("Session::discoverWorker : local worker lookup failed [%v]", lerr)
			if rpc.IsConnError(lerr) {
				connFault = lerr
			}
		}
	} else {
		log.Warn("Session::discoverWorker : cannot resolve local hostname [%v]", err)
	}

	addr, err := s.master.GetWorker(true, "")
	if err != nil {
		if !errors.Is(err, rpc.ErrNoWorker) {
			log.Warn("Session::discoverWorker : remote worker lookup failed [%v]", err)
			if rpc.IsConnError(err) {
				connFault = err
			}
		}
		addr = nil
	}

	if connFault != nil {
		s.invalidateMaster("discoverWorker", connFault)
		return nil, false, connFault
	}
	return addr, false, nil
}

// attachWorker opens the worker channel and pulls the session's paths.
// Any failure reverts to the no-worker state without failing the connect.
// Caller holds s.mu.
func (s *Session) attachWorker(addr rpc.NetAddress, local bool) {
	worker, err := s.transport.DialWorker(addr)
	if err != nil {
		log.Warn("Session::attachWorker : Failed to dial worker %s [%v]", addr.String(), err)
		return
	}
	if err = worker.Open(); err != nil {
		log.Warn("Session::attachWorker : Failed to open worker channel %s [%v]", addr.String(), err)
		return
	}

	dataRoot, err := worker.DataRoot()
	if err == nil {
		s.userTempPath, err = worker.UserTempPath(s.userID)
	}
	if err == nil {
		s.userUnderTempPath, err = worker.UserUnderStoreTempPath(s.userID)
	}
	if err != nil {
		log.Warn("Session::attachWorker : Failed to fetch session paths from %s [%v]", addr.String(), err)
		_ = worker.Close()
		s.userTempPath = ""
		s.userUnderTempPath = ""
		return
	}

	s.worker = worker
	s.workerAddr = addr
	s.workerIsLocal = local
	s.dataRoot = dataRoot
	s.state = stateWithWorker
	log.Info("Session::attachWorker : worker %s attached, local %t, data root %s", addr.String(), local, dataRoot)
}

// invalidateMaster reacts to a transport fault on the master channel.
// The next operation redials and rebuilds the session. Caller holds s.mu.
func (s *Session) invalidateMaster(op string, err error) {
	log.Err("Session::%s : master channel fault, invalidating [%v]", op, err)
	if s.master != nil {
		_ = s.master.Close()
		s.master = nil
	}
	s.state = stateDisconnected
}

// dropWorker reacts to a transport fault on the worker channel. The
// session stays usable for metadata; the next connect after invalidation
// rediscovers a worker. Caller holds s.mu.
func (s *Session) dropWorker(op string, err error) {
	log.Err("Session::%s : worker channel fault, dropping worker [%v]", op, err)
	if s.worker != nil {
		_ = s.worker.Close()
		s.worker = nil
	}
	s.userTempPath = ""
	s.userUnderTempPath = ""
	s.dataRoot = ""
	if s.state == stateWithWorker {
		s.state = stateNoWorker
	}
}

// hasLocalWorker reports whether block data on this machine is reachable
// without the network. Caller holds s.mu.
func (s *Session) hasLocalWorker() bool {
	return s.state == stateWithWorker && s.workerIsLocal && s.worker != nil
}

// HasLocalWorker reports whether the session is attached to a worker on
// this machine
func (s *Session) HasLocalWorker() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false
	}
	return s.hasLocalWorker()
}

// UserID returns the identity the master assigned this session
func (s *Session) UserID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	return s.userID, nil
}

// DataRoot returns the attached worker's local data directory, empty when
// no worker is attached
func (s *Session) DataRoot() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return "", err
	}
	return s.dataRoot, nil
}

// IsCoordinated reports whether the session resolves its master through a
// coordination service
func (s *Session) IsCoordinated() bool {
	return s.coordMode
}

// MasterAddress returns the configured master endpoint
func (s *Session) MasterAddress() rpc.NetAddress {
	return s.masterAddr
}

// Close flushes unspent ledger balances back to the worker and tears down
// both channels. The session must not be used afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.worker != nil {
		s.flushLedger()
		if err := s.worker.Close(); err != nil {
			log.Warn("Session::Close : worker channel close failed [%v]", err)
		}
		s.worker = nil
	}

	if s.master != nil {
		if err := s.master.Close(); err != nil {
			log.Warn("Session::Close : master channel close failed [%v]", err)
		}
		s.master = nil
	}

	s.state = stateDisconnected
	log.Debug("Session::Close : session closed")
	return nil
}
