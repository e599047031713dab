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
	"fmt"

	"github.com/tierstore/tierstore/common"
	"github.com/tierstore/tierstore/internal/rpc"
)

// UnknownTierID is returned by space and tier lookups when no tier applies
const UnknownTierID = rpc.UnknownTierID

const (
	defaultQuotaUnitMb     uint64 = 8
	defaultBlockSizeMb     uint64 = 1024
	defaultMaxTableColumns int32  = 1000

	// MaxBlockSizeBytes caps the per-file block size accepted by CreateFile
	MaxBlockSizeBytes int64 = 2 * common.GbToBytes
)

// Options configure one session. Read from the "client" config section.
type Options struct {
	Address         string `config:"address" yaml:"address,omitempty"`
	QuotaUnitMb     uint64 `config:"quota-unit-mb" yaml:"quota-unit-mb,omitempty"`
	BlockSizeMb     uint64 `config:"block-size-mb" yaml:"block-size-mb,omitempty"`
	MaxTableColumns int32  `config:"max-table-columns" yaml:"max-table-columns,omitempty"`

	// resolved byte values, derived from the Mb fields
	QuotaUnitBytes int64 `config:"-" yaml:"-"`
	BlockSizeBytes int64 `config:"-" yaml:"-"`
}

// DefaultOptions returns the option set used when the config file is silent
func DefaultOptions() Options {
	opts := Options{
		QuotaUnitMb:     defaultQuotaUnitMb,
		BlockSizeMb:     defaultBlockSizeMb,
		MaxTableColumns: defaultMaxTableColumns,
	}
	opts.resolve()
	return opts
}

func (opts *Options) resolve() {
	if opts.QuotaUnitMb == 0 {
		opts.QuotaUnitMb = defaultQuotaUnitMb
	}
	if opts.BlockSizeMb == 0 {
		opts.BlockSizeMb = defaultBlockSizeMb
	}
	if opts.MaxTableColumns == 0 {
		opts.MaxTableColumns = defaultMaxTableColumns
	}
	if opts.QuotaUnitBytes == 0 {
		opts.QuotaUnitBytes = int64(opts.QuotaUnitMb) * common.MbToBytes
	}
	if opts.BlockSizeBytes == 0 {
		opts.BlockSizeBytes = int64(opts.BlockSizeMb) * common.MbToBytes
	}
}

func (opts *Options) validate() error {
	if opts.Address == "" {
		return fmt.Errorf("%w [no address configured]", ErrInvalidAddress)
	}
	opts.resolve()
	if opts.BlockSizeBytes > MaxBlockSizeBytes {
		return fmt.Errorf("%w [block size %d over limit %d]",
			ErrInvalidArgument, opts.BlockSizeBytes, MaxBlockSizeBytes)
	}
	return nil
}
