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

	"github.com/tierstore/tierstore/common"
	"github.com/tierstore/tierstore/internal/rpc"
)

// The metadata cache holds file descriptors in two indexes, one by id and
// one by path, each refreshed independently. Entries are replaced wholesale
// on refresh, never merged field by field; a cached descriptor always
// reflects one consistent master-side snapshot. There is no TTL; entries
// live until overwritten, cleared by a not-found, or the session closes.

// fileInfoByID serves the id index. Caller holds s.mu and a connected
// master. Not-found clears the entry and returns nil without error.
func (s *Session) fileInfoByID(fileID int32, useCached bool) (*rpc.FileInfo, error) {
	if useCached {
		if info, ok := s.byID[fileID]; ok {
			return info, nil
		}
	}

	info, err := s.master.FileInfoByID(fileID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			delete(s.byID, fileID)
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("fileInfoByID", err)
		}
		return nil, err
	}

	s.byID[fileID] = info
	return info, nil
}

// fileInfoByPath serves the path index, same contract as fileInfoByID
func (s *Session) fileInfoByPath(path string, useCached bool) (*rpc.FileInfo, error) {
	if useCached {
		if info, ok := s.byPath[path]; ok {
			return info, nil
		}
	}

	info, err := s.master.FileInfoByPath(path)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			delete(s.byPath, path)
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("fileInfoByPath", err)
		}
		return nil, err
	}

	s.byPath[path] = info
	return info, nil
}

// FileInfoByID returns the file's descriptor, nil when the file does not
// exist. With useCached a previously fetched descriptor is returned as-is.
func (s *Session) FileInfoByID(fileID int32, useCached bool) (*rpc.FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	return s.fileInfoByID(fileID, useCached)
}

// FileInfoByPath is FileInfoByID keyed by path
func (s *Session) FileInfoByPath(path string, useCached bool) (*rpc.FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}
	return s.fileInfoByPath(cleaned, useCached)
}

// blockListInfo returns a descriptor whose block list is trusted to cover
// blockIndex. A cached entry that is a directory or lists fewer blocks
// forces a refetch. Caller holds s.mu and a connected master.
func (s *Session) blockListInfo(fileID int32, blockIndex int32) (*rpc.FileInfo, error) {
	info, ok := s.byID[fileID]
	if !ok || info.IsDir || len(info.BlockIDs) <= int(blockIndex) {
		var err error
		info, err = s.fileInfoByID(fileID, false)
		if err != nil {
			return nil, err
		}
	}
	if info == nil {
		return nil, rpc.ErrNotFound
	}
	if info.IsDir {
		return nil, fmt.Errorf("%w [file %d is a directory]", ErrInvalidArgument, fileID)
	}
	return info, nil
}

// BlockIDByIndex returns the id of the file's blockIndex-th block
func (s *Session) BlockIDByIndex(fileID int32, blockIndex int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	if blockIndex < 0 {
		return -1, fmt.Errorf("%w [negative block index %d]", ErrInvalidArgument, blockIndex)
	}

	info, err := s.blockListInfo(fileID, blockIndex)
	if err != nil {
		return -1, err
	}
	if len(info.BlockIDs) <= int(blockIndex) {
		return -1, fmt.Errorf("%w [block index %d out of bounds for file %d]",
			ErrInvalidArgument, blockIndex, fileID)
	}
	return info.BlockIDs[blockIndex], nil
}

// BlockIDAtOffset maps a byte offset inside the file to a block id
func (s *Session) BlockIDAtOffset(fileID int32, offset int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	if offset < 0 {
		return -1, fmt.Errorf("%w [negative offset %d]", ErrInvalidArgument, offset)
	}

	info, err := s.blockListInfo(fileID, 0)
	if err != nil {
		return -1, err
	}
	if info.BlockSizeBytes <= 0 {
		return -1, fmt.Errorf("%w [file %d has no block size]", ErrInvalidArgument, fileID)
	}

	blockIndex := int32(offset / info.BlockSizeBytes)
	if len(info.BlockIDs) <= int(blockIndex) {
		info, err = s.blockListInfo(fileID, blockIndex)
		if err != nil {
			return -1, err
		}
		if len(info.BlockIDs) <= int(blockIndex) {
			return -1, fmt.Errorf("%w [offset %d beyond file %d]", ErrInvalidArgument, offset, fileID)
		}
	}
	return info.BlockIDs[blockIndex], nil
}

// completeInfo returns a descriptor whose length and completeness fields
// are trusted. An incomplete cached entry forces a refetch, the file may
// have grown or been sealed since. Caller holds s.mu and a connected master.
func (s *Session) completeInfo(fileID int32) (*rpc.FileInfo, error) {
	info, ok := s.byID[fileID]
	if !ok || !info.IsComplete {
		var err error
		info, err = s.fileInfoByID(fileID, false)
		if err != nil {
			return nil, err
		}
	}
	if info == nil {
		return nil, rpc.ErrNotFound
	}
	return info, nil
}

// FileLength returns the file's length in bytes
func (s *Session) FileLength(fileID int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	info, err := s.completeInfo(fileID)
	if err != nil {
		return -1, err
	}
	return info.Length, nil
}

// IsComplete reports whether the file has been sealed
func (s *Session) IsComplete(fileID int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	info, err := s.completeInfo(fileID)
	if err != nil {
		return false, err
	}
	return info.IsComplete, nil
}

// NumBlocks returns how many blocks the file currently has
func (s *Session) NumBlocks(fileID int32) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	info, err := s.completeInfo(fileID)
	if err != nil {
		return -1, err
	}
	return len(info.BlockIDs), nil
}

// BlockSize returns the file's configured block size
func (s *Session) BlockSize(fileID int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	info, err := s.fileInfoByID(fileID, true)
	if err != nil {
		return -1, err
	}
	if info == nil {
		return -1, rpc.ErrNotFound
	}
	return info.BlockSizeBytes, nil
}

// IsDirectory reports whether the id names a directory
func (s *Session) IsDirectory(fileID int32, useCached bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	info, err := s.fileInfoByID(fileID, useCached)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, rpc.ErrNotFound
	}
	return info.IsDir, nil
}

// InMemory reports whether the whole file is resident in the memory tier.
// Residency shifts under eviction, so this always refetches.
func (s *Session) InMemory(fileID int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	info, err := s.fileInfoByID(fileID, false)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, rpc.ErrNotFound
	}
	return info.InMemoryPct == 100, nil
}

// IsPinned reports the file's pin state. The useCached flag is honored
// as passed, pin changes are explicit and callers know when they care.
func (s *Session) IsPinned(fileID int32, useCached bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	info, err := s.fileInfoByID(fileID, useCached)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, rpc.ErrNotFound
	}
	return info.IsPinned, nil
}

// StorePath returns the file's backing-store path, refetching when the
// cached descriptor was taken before the file was bound to one
func (s *Session) StorePath(fileID int32) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return "", err
	}

	info, ok := s.byID[fileID]
	if !ok || info.StorePath == "" {
		var err error
		info, err = s.fileInfoByID(fileID, false)
		if err != nil {
			return "", err
		}
	}
	if info == nil {
		return "", rpc.ErrNotFound
	}
	return info.StorePath, nil
}

// CreationTime returns the file's creation timestamp in epoch millis
func (s *Session) CreationTime(fileID int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	info, err := s.fileInfoByID(fileID, true)
	if err != nil {
		return -1, err
	}
	if info == nil {
		return -1, rpc.ErrNotFound
	}
	return info.CreatedAtMs, nil
}

// PathForID returns the file's path
func (s *Session) PathForID(fileID int32) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return "", err
	}
	info, err := s.fileInfoByID(fileID, true)
	if err != nil {
		return "", err
	}
	if info == nil {
		return "", rpc.ErrNotFound
	}
	return info.Path, nil
}

// BlockInfoByIndex returns placement info for the file's blockIndex-th
// block, fetched fresh from the master
func (s *Session) BlockInfoByIndex(fileID int32, blockIndex int32) (*rpc.BlockInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	blockID, err := s.master.BlockID(fileID, blockIndex)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("BlockInfoByIndex", err)
		}
		return nil, err
	}

	info, err := s.master.BlockInfo(blockID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("BlockInfoByIndex", err)
		}
		return nil, err
	}
	return info, nil
}

// FileBlocks returns placement info for every block of the file
func (s *Session) FileBlocks(fileID int32) ([]*rpc.BlockInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	blocks, err := s.master.FileBlocks(fileID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("FileBlocks", err)
		}
		return nil, err
	}
	return blocks, nil
}

// FileHosts returns the distinct hosts holding any block of the file
func (s *Session) FileHosts(fileID int32) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	blocks, err := s.master.FileBlocks(fileID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("FileHosts", err)
		}
		return nil, err
	}

	seen := make(map[string]struct{})
	hosts := make([]string, 0)
	for _, block := range blocks {
		for _, loc := range block.Locations {
			if _, ok := seen[loc.Host]; !ok {
				seen[loc.Host] = struct{}{}
				hosts = append(hosts, loc.Host)
			}
		}
	}
	return hosts, nil
}
