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
	"github.com/tierstore/tierstore/common/log"
	"github.com/tierstore/tierstore/internal/rpc"
)

// Namespace and table operations delegating to the master. Conventions:
// missing files come back as -1 ids, nil descriptors or false, never as
// errors; transport faults invalidate the master channel and surface as
// errors after translation.

// CreateFile creates a file at path with the session's default block size
// and returns its id
func (s *Session) CreateFile(path string) (int32, error) {
	return s.CreateFileWithBlockSize(path, s.opts.BlockSizeBytes)
}

// CreateFileWithBlockSize creates a file with an explicit block size
func (s *Session) CreateFileWithBlockSize(path string, blockSizeBytes int64) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	if blockSizeBytes <= 0 || blockSizeBytes > MaxBlockSizeBytes {
		return -1, fmt.Errorf("%w [block size %d out of (0, %d]]",
			ErrInvalidArgument, blockSizeBytes, MaxBlockSizeBytes)
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return -1, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	fileID, err := s.master.CreateFile(cleaned, blockSizeBytes)
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("CreateFile", err)
		}
		return -1, err
	}
	log.Debug("Session::CreateFile : created %s as %d", cleaned, fileID)
	return fileID, nil
}

// CreateFileOnBackingStore creates a file pre-bound to an existing
// backing-store object
func (s *Session) CreateFileOnBackingStore(path string, storePath string) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return -1, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	fileID, err := s.master.CreateFileOnBackingStore(cleaned, storePath)
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("CreateFileOnBackingStore", err)
		}
		return -1, err
	}
	return fileID, nil
}

// FileID resolves a path to a file id, -1 when the path does not exist
func (s *Session) FileID(path string) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return -1, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	fileID, err := s.master.FileID(cleaned)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return -1, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("FileID", err)
		}
		return -1, err
	}
	return fileID, nil
}

// Exists reports whether a path names a file or directory
func (s *Session) Exists(path string) (bool, error) {
	fileID, err := s.FileID(path)
	if err != nil {
		return false, err
	}
	return fileID >= 0, nil
}

// CreateNewBlock allocates the next block id for a file being written
func (s *Session) CreateNewBlock(fileID int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}

	blockID, err := s.master.CreateNewBlock(fileID)
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("CreateNewBlock", err)
		}
		return -1, err
	}
	return blockID, nil
}

// CompleteFile seals a file; no further blocks may be added
func (s *Session) CompleteFile(fileID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}

	if err := s.master.CompleteFile(fileID); err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("CompleteFile", err)
		}
		return err
	}
	return nil
}

// Delete removes a file or directory by id. Directories with children
// require recursive. Returns false when nothing was deleted.
func (s *Session) Delete(fileID int32, recursive bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}

	ok, err := s.master.Delete(fileID, recursive)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("Delete", err)
		}
		return false, err
	}
	return ok, nil
}

// DeletePath is Delete keyed by path
func (s *Session) DeletePath(path string, recursive bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return false, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	ok, err := s.master.DeletePath(cleaned, recursive)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("DeletePath", err)
		}
		return false, err
	}
	return ok, nil
}

// Rename moves the file with fileID to dst
func (s *Session) Rename(fileID int32, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}
	cleaned, err := common.CleanPath(dst)
	if err != nil {
		return fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	if err := s.master.Rename(fileID, cleaned); err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("Rename", err)
		}
		return err
	}
	return nil
}

// RenamePath moves src to dst. Renaming a path onto itself succeeds
// without a round trip.
func (s *Session) RenamePath(src string, dst string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	cleanSrc, err := common.CleanPath(src)
	if err != nil {
		return false, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}
	cleanDst, err := common.CleanPath(dst)
	if err != nil {
		return false, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}
	if cleanSrc == cleanDst {
		return true, nil
	}

	ok, err := s.master.RenamePath(cleanSrc, cleanDst)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("RenamePath", err)
		}
		return false, err
	}
	return ok, nil
}

// Mkdir creates a directory and any missing parents
func (s *Session) Mkdir(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return false, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return false, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	ok, err := s.master.Mkdir(cleaned)
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("Mkdir", err)
		}
		return false, err
	}
	return ok, nil
}

// Ls lists the paths under path, nil when path does not exist
func (s *Session) Ls(path string, recursive bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	paths, err := s.master.Ls(cleaned, recursive)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("Ls", err)
		}
		return nil, err
	}
	return paths, nil
}

// ListStatus returns descriptors for the direct children of path
func (s *Session) ListStatus(path string) ([]*rpc.FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	infos, err := s.master.ListStatus(cleaned)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("ListStatus", err)
		}
		return nil, err
	}
	return infos, nil
}

// ListFiles returns the ids of the files under path
func (s *Session) ListFiles(path string, recursive bool) ([]int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	ids, err := s.master.ListFiles(cleaned, recursive)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("ListFiles", err)
		}
		return nil, err
	}
	return ids, nil
}

// CountFiles returns the number of files directly under path
func (s *Session) CountFiles(path string) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return -1, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	count, err := s.master.CountFiles(cleaned)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return -1, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("CountFiles", err)
		}
		return -1, err
	}
	return count, nil
}

// SetPinned sets the file's pin state; pinned files are never evicted
func (s *Session) SetPinned(fileID int32, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}

	if err := s.master.SetPinned(fileID, pinned); err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("SetPinned", err)
		}
		return err
	}
	return nil
}

// Pin excludes the file from eviction
func (s *Session) Pin(fileID int32) error {
	return s.SetPinned(fileID, true)
}

// Unpin makes the file evictable again
func (s *Session) Unpin(fileID int32) error {
	return s.SetPinned(fileID, false)
}

// ReportLostFile tells the master a file's data is gone so it can be
// recomputed from lineage
func (s *Session) ReportLostFile(fileID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}

	if err := s.master.ReportLostFile(fileID); err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("ReportLostFile", err)
		}
		return err
	}
	return nil
}

// OutOfMemoryForPinnedFile notifies the master that a pinned file could
// not be kept in memory. Fire and forget, failures are logged only.
func (s *Session) OutOfMemoryForPinnedFile(fileID int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		log.Warn("Session::OutOfMemoryForPinnedFile : not connected [%v]", err)
		return
	}

	if err := s.master.OutOfMemoryForPinnedFile(fileID); err != nil {
		log.Warn("Session::OutOfMemoryForPinnedFile : notify failed for file %d [%v]", fileID, err)
		if rpc.IsConnError(err) {
			s.invalidateMaster("OutOfMemoryForPinnedFile", err)
		}
	}
}

// CreateDependency records a lineage edge between parent and child files
func (s *Session) CreateDependency(parents []string, children []string, commandPrefix string,
	data [][]byte, comment string, framework string, frameworkVersion string,
	dependencyType int32, childBlockSizeBytes int64) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	if len(children) == 0 {
		return -1, fmt.Errorf("%w [dependency with no children]", ErrInvalidArgument)
	}

	depID, err := s.master.CreateDependency(parents, children, commandPrefix, data,
		comment, framework, frameworkVersion, dependencyType, childBlockSizeBytes)
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("CreateDependency", err)
		}
		return -1, err
	}
	return depID, nil
}

// DependencyInfo returns a lineage record, nil when unknown
func (s *Session) DependencyInfo(dependencyID int32) (*rpc.DependencyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	info, err := s.master.DependencyInfo(dependencyID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("DependencyInfo", err)
		}
		return nil, err
	}
	return info, nil
}

// RequestFilesInDependency asks the master to recompute the dependency's
// input files
func (s *Session) RequestFilesInDependency(dependencyID int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}

	if err := s.master.RequestFilesInDependency(dependencyID); err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("RequestFilesInDependency", err)
		}
		return err
	}
	return nil
}

// CreateRawTable creates a columnar raw table rooted at path
func (s *Session) CreateRawTable(path string, columns int32, metadata []byte) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return -1, err
	}
	if columns < 1 || columns > s.opts.MaxTableColumns {
		return -1, fmt.Errorf("%w [column count %d out of [1, %d]]",
			ErrInvalidArgument, columns, s.opts.MaxTableColumns)
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return -1, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	tableID, err := s.master.CreateRawTable(cleaned, columns, metadata)
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("CreateRawTable", err)
		}
		return -1, err
	}
	return tableID, nil
}

// RawTableInfoByID returns a raw table's descriptor, nil when unknown
func (s *Session) RawTableInfoByID(tableID int32) (*rpc.RawTableInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	info, err := s.master.RawTableInfoByID(tableID)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("RawTableInfoByID", err)
		}
		return nil, err
	}
	return info, nil
}

// RawTableInfoByPath is RawTableInfoByID keyed by path
func (s *Session) RawTableInfoByPath(path string) (*rpc.RawTableInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}
	cleaned, err := common.CleanPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w [%v]", ErrInvalidArgument, err)
	}

	info, err := s.master.RawTableInfoByPath(cleaned)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, nil
		}
		if rpc.IsConnError(err) {
			s.invalidateMaster("RawTableInfoByPath", err)
		}
		return nil, err
	}
	return info, nil
}

// UpdateRawTableMetadata replaces a raw table's metadata blob
func (s *Session) UpdateRawTableMetadata(tableID int32, metadata []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return err
	}

	if err := s.master.UpdateRawTableMetadata(tableID, metadata); err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("UpdateRawTableMetadata", err)
		}
		return err
	}
	return nil
}

// BackingStoreAddress returns the root address of the cluster's durable
// backing store
func (s *Session) BackingStoreAddress() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return "", err
	}

	addr, err := s.master.BackingStoreAddress()
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("BackingStoreAddress", err)
		}
		return "", err
	}
	return addr, nil
}

// Workers returns the master's current worker roster
func (s *Session) Workers() ([]*rpc.WorkerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.connect(); err != nil {
		return nil, err
	}

	workers, err := s.master.WorkerRoster()
	if err != nil {
		if rpc.IsConnError(err) {
			s.invalidateMaster("Workers", err)
		}
		return nil, err
	}
	return workers, nil
}
