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

import "fmt"

// UnknownTierID is the sentinel returned when no storage tier applies
const UnknownTierID int64 = -1

// NetAddress : host and port of a master or worker endpoint
type NetAddress struct {
	Host string
	Port int
}

func (a NetAddress) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// FileInfo is the master's descriptor for one file. The client caches these
// wholesale; see the metadata cache for the replacement rules.
type FileInfo struct {
	ID             int32
	Path           string
	BlockIDs       []int64
	BlockSizeBytes int64
	Length         int64
	IsDir          bool
	IsComplete     bool
	IsPinned       bool
	InMemoryPct    int32
	StorePath      string
	CreatedAtMs    int64
}

// BlockInfo : placement info for one block of a file
type BlockInfo struct {
	BlockID   int64
	Offset    int64
	Length    int64
	Locations []NetAddress
}

// WorkerInfo : one entry of the master's worker roster
type WorkerInfo struct {
	ID             int64
	Address        NetAddress
	State          string
	CapacityBytes  int64
	UsedBytes      int64
	LastContactSec int32
	StartTimeMs    int64
}

// DependencyInfo : lineage record linking input files to output files
type DependencyInfo struct {
	ID       int32
	Parents  []int32
	Children []int32
	Data     [][]byte
}

// RawTableInfo : descriptor of a raw table and its column files
type RawTableInfo struct {
	ID       int32
	Name     string
	Path     string
	Columns  int32
	Metadata []byte
}

// BlockFileInfo : physical location of a block on the worker's node
type BlockFileInfo struct {
	Path      string
	SizeBytes int64
}

// TierDirInfo : one storage tier directory managed by the worker
type TierDirInfo struct {
	TierID int64
	Path   string
	Conf   map[string]string
}
