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
	"os"
	"path/filepath"
	"strings"
)

// Standard size units
const (
	KbToBytes = 1024
	MbToBytes = 1024 * KbToBytes
	GbToBytes = 1024 * MbToBytes
	TbToBytes = 1024 * GbToBytes
)

const ClientName = "tierstore"

// These are set by the build through -ldflags
var TierStoreVersion = "1.4.0"
var GitCommit string
var CommitDate string
var GoVersion string
var OsArch string

var DefaultWorkDir = "$HOME/.tierstore"
var DefaultLogFilePath = filepath.Join(DefaultWorkDir, "tierstore.log")

// LogLevel enumerates the severities understood by the loggers.
type LogLevel int

const (
	ELogLevelInvalid LogLevel = iota
	ELogLevelOff
	ELogLevelCrit
	ELogLevelErr
	ELogLevelWarning
	ELogLevelInfo
	ELogLevelTrace
	ELogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case ELogLevelOff:
		return "LOG_OFF"
	case ELogLevelCrit:
		return "LOG_CRIT"
	case ELogLevelErr:
		return "LOG_ERR"
	case ELogLevelWarning:
		return "LOG_WARNING"
	case ELogLevelInfo:
		return "LOG_INFO"
	case ELogLevelTrace:
		return "LOG_TRACE"
	case ELogLevelDebug:
		return "LOG_DEBUG"
	}
	return "LOG_INVALID"
}

// LogLevelFromString : Convert a config string to a LogLevel, default LOG_WARNING
func LogLevelFromString(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOG_OFF":
		return ELogLevelOff
	case "LOG_CRIT":
		return ELogLevelCrit
	case "LOG_ERR":
		return ELogLevelErr
	case "LOG_WARNING", "":
		return ELogLevelWarning
	case "LOG_INFO":
		return ELogLevelInfo
	case "LOG_TRACE":
		return ELogLevelTrace
	case "LOG_DEBUG":
		return ELogLevelDebug
	}
	return ELogLevelInvalid
}

// LogConfig : Configuration passed to the logger factory
type LogConfig struct {
	Level       LogLevel
	MaxFileSize uint64
	FileCount   uint64
	FilePath    string
	Tag         string
	TimeTracker bool
}

func init() {
	home, err := os.UserHomeDir()
	if err == nil {
		DefaultWorkDir = JoinUnixFilepath(home, ".tierstore")
		DefaultLogFilePath = JoinUnixFilepath(DefaultWorkDir, "tierstore.log")
	}
}
