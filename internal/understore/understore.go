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

package understore

import (
	"fmt"
	"strings"
)

// UnderStore abstracts the durable store behind the tier cluster. The client
// only needs enough surface to manage its per-user temp folders; data paths
// go through the workers.
type UnderStore interface {
	Name() string
	Exists(path string) (bool, error)
	IsFile(path string) (bool, error)
	MkdirAll(path string) error
}

// Get picks the store implementation from the path's scheme. Paths without
// a scheme, and file:// paths, are served by the local store.
func Get(path string, conf map[string]string) (UnderStore, error) {
	switch {
	case strings.HasPrefix(path, "s3://"):
		return newS3Store(conf)
	case strings.HasPrefix(path, "file://"), !strings.Contains(path, "://"):
		return newLocalStore(), nil
	default:
		scheme := path[:strings.Index(path, "://")]
		return nil, fmt.Errorf("understore: unsupported scheme [%s]", scheme)
	}
}

// StripScheme removes a file:// prefix so local paths can be used with the
// OS directly. Other schemes are returned untouched.
func StripScheme(path string) string {
	return strings.TrimPrefix(path, "file://")
}
