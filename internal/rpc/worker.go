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

// WorkerClient is the storage worker's RPC surface as consumed by the
// session. A worker handle is only valid while the session considers that
// worker usable; a *ConnError from any call tells the session to drop it.
type WorkerClient interface {
	Open() error
	Close() error
	IsOpen() bool

	// DataRoot is the worker-local directory under which tier data lives
	DataRoot() (string, error)
	UserTempPath(userID int64) (string, error)
	UserUnderStoreTempPath(userID int64) (string, error)

	AccessBlock(blockID int64) error
	CacheBlock(tierID int64, userID int64, blockID int64) error

	LockBlock(blockID int64, userID int64) error
	UnlockBlock(blockID int64, userID int64) error

	AddCheckpoint(userID int64, fileID int32) error
	AsyncCheckpoint(fileID int32) (bool, error)

	// RequestSpace asks the worker to reserve bytes for userID and returns
	// the tier the reservation landed on, or UnknownTierID when refused.
	// ReturnSpace credits unspent bytes back to that tier's accounting.
	RequestSpace(userID int64, bytes int64) (int64, error)
	ReturnSpace(tierID int64, userID int64, bytes int64) error

	PromoteBlock(blockID int64) (bool, error)
	BlockFileInfo(blockID int64, tierID int64) (*BlockFileInfo, error)
	TierIDForBlock(blockID int64) (int64, error)
	TierDirInfo(tierID int64) (*TierDirInfo, error)
}
