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

// The space ledger tracks, per storage tier, bytes the worker has reserved
// for this session that the caller has not yet consumed. Balances are never
// negative. Reservations are rounded up to the quota unit so that small
// writes amortize to one RPC per unit rather than one per write.

// RequestSpace reserves n bytes in some tier and returns that tier's id,
// or UnknownTierID when no tier can grant the space. A tier with enough
// unspent balance satisfies the request with no RPC.
func (s *Session) RequestSpace(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return UnknownTierID
	}
	if n <= 0 {
		return UnknownTierID
	}
	if !s.hasLocalWorker() {
		return UnknownTierID
	}

	for tierID, balance := range s.ledger {
		if balance >= n {
			s.ledger[tierID] = balance - n
			return tierID
		}
	}

	toRequest := n
	if toRequest < s.opts.QuotaUnitBytes {
		toRequest = s.opts.QuotaUnitBytes
	}

	tierID, err := s.worker.RequestSpace(s.userID, toRequest)
	if err != nil {
		log.Err("Session::RequestSpace : reservation of %d failed [%v]", toRequest, err)
		if rpc.IsConnError(err) {
			s.dropWorker("RequestSpace", err)
		}
		return UnknownTierID
	}
	if tierID == rpc.UnknownTierID {
		return UnknownTierID
	}

	available := toRequest + s.ledger[tierID]
	if available < n {
		// granted but still short; keep the grant on the books so the
		// bytes are recycled or returned at teardown instead of leaking
		s.ledger[tierID] = available
		log.Warn("Session::RequestSpace : tier %d granted %d, still short of %d", tierID, toRequest, n)
		return UnknownTierID
	}

	s.ledger[tierID] = available - n
	return tierID
}

// ReleaseSpace credits n unspent bytes back to the tier's balance for
// reuse by later requests
func (s *Session) ReleaseSpace(tierID int64, n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		return
	}
	s.ledger[tierID] += n
}

// flushLedger returns every non-zero balance to the worker, one RPC per
// tier. Called at teardown while the worker channel is still open.
// Caller holds s.mu.
func (s *Session) flushLedger() {
	for tierID, balance := range s.ledger {
		if balance <= 0 {
			continue
		}
		if err := s.worker.ReturnSpace(tierID, s.userID, balance); err != nil {
			log.Warn("Session::flushLedger : returning %d bytes for tier %d failed [%v]", balance, tierID, err)
		}
	}
	s.ledger = make(map[int64]int64)
}

// ledgerBalance reports the unspent balance for one tier. Caller holds s.mu.
func (s *Session) ledgerBalance(tierID int64) int64 {
	return s.ledger[tierID]
}
