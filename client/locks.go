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

package client

import (
	"github.com/tierstore/tierstore/common/log"
	"github.com/tierstore/tierstore/internal/rpc"
)

// The block lock table multiplexes any number of local holders of the same
// block onto exactly one worker-side lock. An entry exists iff the worker
// holds a lock for this session on that block; it is removed exactly when
// the last handle goes away and the worker unlock succeeds.

// NewLockHandle mints the next lock handle. Handles are opaque,
// monotonically increasing and only meaningful within this session.
func (s *Session) NewLockHandle() int32 {
	return s.handleCtr.Inc() - 1
}

// lockBlock adds handle as a holder of blockID, taking the worker-side
// lock when this is the first holder. Caller holds s.mu after connect.
func (s *Session) lockBlock(blockID int64, handle int32) bool {
	if blockID <= 0 || handle < 0 {
		return false
	}

	if holders, ok := s.locks[blockID]; ok {
		holders[handle] = struct{}{}
		return true
	}

	// first holder, the worker lock is taken exactly once
	if !s.hasLocalWorker() {
		log.Debug("Session::lockBlock : no local worker to lock block %d", blockID)
		return false
	}
	if err := s.worker.LockBlock(blockID, s.userID); err != nil {
		log.Err("Session::lockBlock : worker lock failed for block %d [%v]", blockID, err)
		if rpc.IsConnError(err) {
			s.dropWorker("lockBlock", err)
		}
		return false
	}

	s.locks[blockID] = map[int32]struct{}{handle: {}}
	return true
}

// unlockBlock drops handle's hold on blockID, releasing the worker-side
// lock when the last holder goes away. Caller holds s.mu.
func (s *Session) unlockBlock(blockID int64, handle int32) bool {
	holders, ok := s.locks[blockID]
	if !ok {
		// already unlocked
		return true
	}

	delete(holders, handle)
	if len(holders) > 0 {
		return true
	}

	if s.worker == nil {
		log.Err("Session::unlockBlock : no worker to unlock block %d", blockID)
		return false
	}
	if err := s.worker.UnlockBlock(blockID, s.userID); err != nil {
		log.Err("Session::unlockBlock : worker unlock failed for block %d [%v]", blockID, err)
		if rpc.IsConnError(err) {
			s.dropWorker("unlockBlock", err)
		}
		return false
	}

	delete(s.locks, blockID)
	return true
}

// LockBlock takes a local hold on blockID under handle. N holders of the
// same block cost exactly one worker RPC. False means the block cannot be
// locked here, usually because no local worker holds it.
func (s *Session) LockBlock(blockID int64, handle int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false
	}
	return s.lockBlock(blockID, handle)
}

// UnlockBlock releases handle's hold on blockID. Unlocking an untracked
// pair is an idempotent success.
func (s *Session) UnlockBlock(blockID int64, handle int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false
	}
	return s.unlockBlock(blockID, handle)
}

// lockedBlockCount reports how many blocks this session currently holds
// worker locks on. Caller holds s.mu.
func (s *Session) lockedBlockCount() int {
	return len(s.locks)
}
