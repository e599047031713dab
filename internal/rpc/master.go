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

// MasterClient is the metadata authority's RPC surface as consumed by the
// session. Calls block for their full round trip; cancellation and timeouts
// belong to the transport's own configuration.
//
// Absence conventions: lookups return ErrNotFound (or ErrNoWorker for
// discovery); transport failures surface as *ConnError.
type MasterClient interface {
	Connect() error
	Close() error

	// GetUserID assigns (or returns) the session identity
	GetUserID() (int64, error)

	// GetWorker resolves a worker endpoint. With forceRemote false the
	// master returns only a worker pinned to hostname; with forceRemote
	// true any worker qualifies and hostname is ignored.
	GetWorker(forceRemote bool, hostname string) (*NetAddress, error)

	CreateFile(path string, blockSizeBytes int64) (int32, error)
	CreateFileOnBackingStore(path string, storePath string) (int32, error)
	CreateNewBlock(fileID int32) (int64, error)
	CompleteFile(fileID int32) error

	FileInfoByID(fileID int32) (*FileInfo, error)
	FileInfoByPath(path string) (*FileInfo, error)
	FileID(path string) (int32, error)
	BlockID(fileID int32, blockIndex int32) (int64, error)
	BlockInfo(blockID int64) (*BlockInfo, error)
	FileBlocks(fileID int32) ([]*BlockInfo, error)

	Delete(fileID int32, recursive bool) (bool, error)
	DeletePath(path string, recursive bool) (bool, error)
	Rename(fileID int32, dst string) error
	RenamePath(src string, dst string) (bool, error)
	Mkdir(path string) (bool, error)
	Ls(path string, recursive bool) ([]string, error)
	ListStatus(path string) ([]*FileInfo, error)
	ListFiles(path string, recursive bool) ([]int32, error)
	CountFiles(path string) (int32, error)

	SetPinned(fileID int32, pinned bool) error
	ReportLostFile(fileID int32) error
	OutOfMemoryForPinnedFile(fileID int32) error

	CreateDependency(parents []string, children []string, commandPrefix string,
		data [][]byte, comment string, framework string, frameworkVersion string,
		dependencyType int32, childBlockSizeBytes int64) (int32, error)
	DependencyInfo(dependencyID int32) (*DependencyInfo, error)
	RequestFilesInDependency(dependencyID int32) error

	CreateRawTable(path string, columns int32, metadata []byte) (int32, error)
	RawTableInfoByID(tableID int32) (*RawTableInfo, error)
	RawTableInfoByPath(path string) (*RawTableInfo, error)
	UpdateRawTableMetadata(tableID int32, metadata []byte) error

	BackingStoreAddress() (string, error)
	WorkerRoster() ([]*WorkerInfo, error)
}
