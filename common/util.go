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

package common

import (
	"fmt"
	"net"
	"os"
	"path"
	"regexp"
	"strings"
)

// Separator used by every storage path regardless of platform
const PathSeparator = "/"

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9-_.]`)

// JoinUnixFilepath : Join paths using the unix separator only, trimming any
// duplicate separators introduced by the inputs
func JoinUnixFilepath(elem ...string) string {
	joined := path.Join(elem...)
	return strings.ReplaceAll(joined, "\\", PathSeparator)
}

// CleanPath : Normalize a storage path. The path must be absolute; redundant
// separators and dot segments are collapsed. A trailing separator is removed
// except for the root itself.
func CleanPath(p string) (string, error) {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		return "", fmt.Errorf("invalid path: path is empty")
	}
	if !strings.HasPrefix(trimmed, PathSeparator) {
		return "", fmt.Errorf("invalid path %s: path must be absolute", p)
	}
	return path.Clean(trimmed), nil
}

// SanitizeName : Reduce a name to characters safe for use in file names
func SanitizeName(name string) string {
	return invalidNameChars.ReplaceAllString(name, "")
}

// GetLocalHostName : Resolve the canonical network name of this machine.
// Falls back to the bare hostname when reverse resolution is not possible.
func GetLocalHostName() (string, error) {
	host, err := os.Hostname()
	if err != nil {
		return "", err
	}

	addrs, err := net.LookupHost(host)
	if err != nil || len(addrs) == 0 {
		// The hostname does not resolve, use it as-is
		return host, nil
	}

	names, err := net.LookupAddr(addrs[0])
	if err != nil || len(names) == 0 {
		return host, nil
	}
	return strings.TrimSuffix(names[0], "."), nil
}

// DirectoryExists : Check if a directory is present on the local filesystem
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
