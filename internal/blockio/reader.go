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

// Package blockio reads ranges out of block files sitting on the local node.
package blockio

import (
	"fmt"
	"io"
	"os"
)

// Reader is a random-access view over one block file
type Reader struct {
	file *os.File
	size int64
}

// Open stats and opens the block file at path read-only
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Reader{file: f, size: info.Size()}, nil
}

// Size is the block file's length in bytes
func (r *Reader) Size() int64 {
	return r.size
}

// ReadRange returns length bytes starting at offset. The range must sit
// entirely inside the file.
func (r *Reader) ReadRange(offset int64, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > r.size {
		return nil, fmt.Errorf("blockio: range [%d, %d) outside file of %d bytes",
			offset, offset+length, r.size)
	}

	buf := make([]byte, length)
	_, err := r.file.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return buf, nil
}

func (r *Reader) Close() error {
	return r.file.Close()
}
