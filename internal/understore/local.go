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
	"os"

	"github.com/tierstore/tierstore/common/log"
)

// localStore serves file:// and plain paths straight off the node's
// filesystem. Worker tier directories on shared mounts land here.
type localStore struct{}

func newLocalStore() *localStore {
	return &localStore{}
}

func (ls *localStore) Name() string {
	return "local"
}

func (ls *localStore) Exists(path string) (bool, error) {
	_, err := os.Stat(StripScheme(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (ls *localStore) IsFile(path string) (bool, error) {
	info, err := os.Stat(StripScheme(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (ls *localStore) MkdirAll(path string) error {
	p := StripScheme(path)
	log.Trace("localStore::MkdirAll : creating %s", p)
	return os.MkdirAll(p, os.FileMode(0775))
}
