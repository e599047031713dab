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
	"strconv"
	"strings"

	"github.com/tierstore/tierstore/internal/rpc"
)

// Address schemes. "direct" talks straight to a master endpoint,
// "coord" resolves the active master through the coordination service
// registered at the given endpoint.
const (
	SchemeDirect = "direct"
	SchemeCoord  = "coord"
)

// ParseAddress splits scheme://host:port[/path...] into the endpoint and
// the coordination-mode flag. Exactly one host:port pair must appear
// before the first path separator.
func ParseAddress(address string) (rpc.NetAddress, bool, error) {
	scheme, rest, found := strings.Cut(address, "://")
	if !found {
		return rpc.NetAddress{}, false, fmt.Errorf("%w [no scheme in %s]", ErrInvalidAddress, address)
	}

	var coordMode bool
	switch scheme {
	case SchemeDirect:
		coordMode = false
	case SchemeCoord:
		coordMode = true
	default:
		return rpc.NetAddress{}, false, fmt.Errorf("%w [unknown scheme %s]", ErrInvalidAddress, scheme)
	}

	authority, _, _ := strings.Cut(rest, "/")
	if strings.Count(authority, ":") != 1 {
		return rpc.NetAddress{}, false, fmt.Errorf("%w [expected host:port, got %s]", ErrInvalidAddress, authority)
	}

	host, portStr, _ := strings.Cut(authority, ":")
	if host == "" {
		return rpc.NetAddress{}, false, fmt.Errorf("%w [empty host in %s]", ErrInvalidAddress, address)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return rpc.NetAddress{}, false, fmt.Errorf("%w [bad port %s]", ErrInvalidAddress, portStr)
	}

	return rpc.NetAddress{Host: host, Port: port}, coordMode, nil
}
