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

package log

import (
	"github.com/tierstore/tierstore/common"
)

// SilentLogger : Logger that discards everything, used in tests and as the
// safe default before configuration is loaded
type SilentLogger struct{}

func (*SilentLogger) GetType() string                  { return "silent" }
func (*SilentLogger) GetLogLevel() common.LogLevel     { return common.ELogLevelOff }
func (*SilentLogger) SetLogLevel(common.LogLevel)      {}
func (*SilentLogger) SetLogFile(string) error          { return nil }
func (*SilentLogger) SetMaxLogSize(int)                {}
func (*SilentLogger) SetLogFileCount(int)              {}
func (*SilentLogger) Destroy() error                   { return nil }
func (*SilentLogger) Debug(string, ...interface{})     {}
func (*SilentLogger) Trace(string, ...interface{})     {}
func (*SilentLogger) Info(string, ...interface{})      {}
func (*SilentLogger) Warn(string, ...interface{})      {}
func (*SilentLogger) Err(string, ...interface{})       {}
func (*SilentLogger) Crit(string, ...interface{})      {}
func (*SilentLogger) LogRotate() error                 { return nil }
