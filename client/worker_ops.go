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

	"github.com/tierstore/tierstore/common"
	"github.com/tierstore/tierstore/common/log"
	"github.com/tierstore/tierstore/internal/rpc"
	"github.com/tierstore/tierstore/internal/understore"
)

// Data-side operations delegating to the attached worker. They all need a
// connected worker; ErrNoLocalWorker is returned when one was required but
// none is attached.

// accessBlock tells the worker a block was just read so its tiering and
// eviction bookkeeping stay warm. Best effort, failures are logged and
// never propagated. Caller holds s.mu.
func (s *Session) accessBlock(blockID int64) {
	if s.worker == nil {
		return
	}
	if err := s.worker.AccessBlock(blockID); err != nil {
		log.Warn("Session::accessBlock : access notify failed for block %d [%v]", blockID, err)
		if rpc.IsConnError(err) {
			s.dropWorker("accessBlock", err)
		}
	}
}

// CacheBlock tells the worker a freshly written block in the user temp
// folder is ready to be promoted into tier storage
func (s *Session) CacheBlock(tierID int64, blockID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}
	if s.worker == nil {
		return ErrNoLocalWorker
	}

	if err := s.worker.CacheBlock(tierID, s.userID, blockID); err != nil {
		if rpc.IsConnError(err) {
			s.dropWorker("CacheBlock", err)
		}
		return err
	}
	return nil
}

// AddCheckpoint asks the worker to persist the file to the backing store
func (s *Session) AddCheckpoint(fileID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}
	if s.worker == nil {
		return ErrNoLocalWorker
	}

	if err := s.worker.AddCheckpoint(s.userID, fileID); err != nil {
		if rpc.IsConnError(err) {
			s.dropWorker("AddCheckpoint", err)
		}
		return err
	}
	return nil
}

// AsyncCheckpoint schedules a background checkpoint; false means the
// worker declined, typically because the file is not in a valid state
func (s *Session) AsyncCheckpoint(fileID int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	if s.worker == nil {
		return false, ErrNoLocalWorker
	}

	scheduled, err := s.worker.AsyncCheckpoint(fileID)
	if err != nil {
		if rpc.IsDeclined(err) {
			log.Warn("Session::AsyncCheckpoint : worker declined checkpoint of file %d [%v]", fileID, err)
			return false, err
		}
		if rpc.IsConnError(err) {
			s.dropWorker("AsyncCheckpoint", err)
		}
		return false, err
	}
	return scheduled, nil
}

// PromoteBlock asks the worker to move a block to the topmost tier
func (s *Session) PromoteBlock(blockID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	if s.worker == nil {
		return false, ErrNoLocalWorker
	}

	promoted, err := s.worker.PromoteBlock(blockID)
	if err != nil {
		if rpc.IsConnError(err) {
			s.dropWorker("PromoteBlock", err)
		}
		return false, err
	}
	return promoted, nil
}

// TierIDForBlock returns the tier holding the block on the attached
// worker, UnknownTierID when the worker does not hold it
func (s *Session) TierIDForBlock(blockID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return UnknownTierID, err
	}
	if s.worker == nil {
		return UnknownTierID, ErrNoLocalWorker
	}

	tierID, err := s.worker.TierIDForBlock(blockID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return UnknownTierID, nil
		}
		if rpc.IsConnError(err) {
			s.dropWorker("TierIDForBlock", err)
		}
		return UnknownTierID, err
	}
	return tierID, nil
}

// BlockFileInfo resolves the block's physical file on the attached
// worker's node, nil when the worker does not hold it in that tier
func (s *Session) BlockFileInfo(blockID int64, tierID int64) (*rpc.BlockFileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	if s.worker == nil {
		return nil, ErrNoLocalWorker
	}

	info, err := s.worker.BlockFileInfo(blockID, tierID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.dropWorker("BlockFileInfo", err)
		}
		return nil, err
	}
	return info, nil
}

// tierDirInfo returns the tier's directory descriptor, fetched once per
// tier and held for the session's lifetime. Caller holds s.mu with a
// worker attached.
func (s *Session) tierDirInfo(tierID int64) (*rpc.TierDirInfo, error) {
	if dir, ok := s.tierDirs[tierID]; ok {
		return dir, nil
	}

	dir, err := s.worker.TierDirInfo(tierID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.dropWorker("tierDirInfo", err)
		}
		return nil, err
	}

	s.tierDirs[tierID] = dir
	return dir, nil
}

// TierDirInfo returns the descriptor of one storage tier directory on the
// attached worker
func (s *Session) TierDirInfo(tierID int64) (*rpc.TierDirInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	if s.worker == nil {
		return nil, ErrNoLocalWorker
	}
	return s.tierDirInfo(tierID)
}

// CreateUserTempDir creates this session's temp folder inside the given
// tier directory and returns its path
func (s *Session) CreateUserTempDir(tierID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return "", err
	}
	if s.worker == nil {
		return "", ErrNoLocalWorker
	}

	dir, err := s.tierDirInfo(tierID)
	if err != nil {
		return "", err
	}
	if dir == nil {
		return "", rpc.ErrNotFound
	}

	store, err := understore.Get(dir.Path, dir.Conf)
	if err != nil {
		return "", err
	}

	tempPath := common.JoinUnixFilepath(dir.Path, s.userTempPath)

	// an existing directory is reused; a file squatting on the path has to
	// be replaced before the folder can exist
	exists, err := store.Exists(tempPath)
	if err != nil {
		return "", err
	}
	if exists {
		isFile, ferr := store.IsFile(tempPath)
		if ferr != nil {
			return "", ferr
		}
		if !isFile {
			return tempPath, nil
		}
	}

	if err = store.MkdirAll(tempPath); err != nil {
		log.Err("Session::CreateUserTempDir : Failed to create %s [%v]", tempPath, err)
		return "", err
	}
	return tempPath, nil
}

// CreateUserUnderStoreTempDir creates this session's scratch folder on
// the durable backing store and returns its path
func (s *Session) CreateUserUnderStoreTempDir() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return "", err
	}
	if s.worker == nil {
		return "", ErrNoLocalWorker
	}
	if s.userUnderTempPath == "" {
		return "", ErrNoLocalWorker
	}

	store, err := understore.Get(s.userUnderTempPath, nil)
	if err != nil {
		return "", err
	}
	if err = store.MkdirAll(s.userUnderTempPath); err != nil {
		log.Err("Session::CreateUserUnderStoreTempDir : Failed to create %s [%v]", s.userUnderTempPath, err)
		return "", err
	}
	return s.userUnderTempPath, nil
}
