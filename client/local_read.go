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
	"errors"
	"fmt"

	"github.com/tierstore/tierstore/common/log"
	"github.com/tierstore/tierstore/internal/blockio"
	"github.com/tierstore/tierstore/internal/rpc"
)

// BlockBuffer carries the bytes of a short-circuit read together with the
// block lock that protects them from eviction. The lock belongs to the
// buffer; Close releases it exactly once.
type BlockBuffer struct {
	Data       []byte
	BlockID    int64
	LockHandle int32

	session *Session
	closed  bool
}

// Close releases the block lock backing the buffer. Safe to call more
// than once.
func (b *BlockBuffer) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.session.UnlockBlock(b.BlockID, b.LockHandle)
}

// ReadLocalBlock reads [offset, offset+length) of a block straight from
// the node's disk, bypassing the worker's data path. length -1 means the
// rest of the block. A nil buffer with nil error means the block is not
// locally available; the caller falls back to a remote read. On success
// the returned buffer owns a block lock and must be closed.
func (s *Session) ReadLocalBlock(blockID int64, tierID int64, offset int64, length int64) (*BlockBuffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	if offset < 0 {
		return nil, fmt.Errorf("%w [negative offset %d]", ErrInvalidArgument, offset)
	}
	if length < -1 {
		return nil, fmt.Errorf("%w [bad length %d]", ErrInvalidArgument, length)
	}

	handle := s.NewLockHandle()
	if !s.lockBlock(blockID, handle) {
		log.Debug("Session::ReadLocalBlock : block %d not lockable locally", blockID)
		return nil, nil
	}

	// every failure from here on must put the lock count back where it was
	info, err := s.blockFileForRead(blockID, tierID)
	if err != nil || info == nil {
		s.unlockBlock(blockID, handle)
		return nil, err
	}

	if length == -1 {
		length = info.SizeBytes - offset
	}
	if offset > info.SizeBytes || offset+length > info.SizeBytes {
		s.unlockBlock(blockID, handle)
		return nil, fmt.Errorf("%w [range [%d, %d) of block %d with %d bytes]",
			ErrOutOfRange, offset, offset+length, blockID, info.SizeBytes)
	}

	data, err := s.readBlockRange(info.Path, offset, length)
	if err != nil {
		s.unlockBlock(blockID, handle)
		return nil, err
	}

	s.accessBlock(blockID)

	return &BlockBuffer{
		Data:       data,
		BlockID:    blockID,
		LockHandle: handle,
		session:    s,
	}, nil
}

// blockFileForRead resolves the block's physical file via the worker,
// nil when the worker does not hold the block in that tier. Caller holds
// s.mu with the block already locked.
func (s *Session) blockFileForRead(blockID int64, tierID int64) (*rpc.BlockFileInfo, error) {
	if s.worker == nil {
		return nil, nil
	}

	info, err := s.worker.BlockFileInfo(blockID, tierID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.dropWorker("ReadLocalBlock", err)
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// readBlockRange pulls the byte range out of the block file on disk
func (s *Session) readBlockRange(path string, offset int64, length int64) ([]byte, error) {
	reader, err := blockio.Open(path)
	if err != nil {
		log.Err("Session::ReadLocalBlock : Failed to open block file %s [%v]", path, err)
		return nil, err
	}
	defer reader.Close()

	data, err := reader.ReadRange(offset, length)
	if err != nil {
		log.Err("Session::ReadLocalBlock : Failed to read %s [%v]", path, err)
		return nil, err
	}
	return data, nil
}
