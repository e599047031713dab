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
	"errors"
	"strings"

	"github.com/tierstore/tierstore/common"
)

// Logger : Interface to deal with different kinds of logging options
type Logger interface {
	GetType() string
	GetLogLevel() common.LogLevel
	SetLogLevel(common.LogLevel)
	SetLogFile(name string) error
	SetMaxLogSize(size int)
	SetLogFileCount(count int)
	Destroy() error

	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Err(format string, args ...interface{})
	Crit(format string, args ...interface{})

	LogRotate() error
}

var logObj Logger

// timeTracker : default is false, enables time details in log messages
var timeTracker bool = false

// NewLogger : Create a logger of the given type. An empty or "default" name
// creates the file-backed base logger.
func NewLogger(name string, config common.LogConfig) (Logger, error) {
	timeTracker = config.TimeTracker

	if len(strings.TrimSpace(config.Tag)) == 0 {
		config.Tag = common.ClientName
	}

	if name == "silent" {
		return &SilentLogger{}, nil
	} else if name == "" || name == "default" || name == "base" {
		baseLogger, err := newBaseLogger(LogFileConfig{
			LogFile:      config.FilePath,
			LogLevel:     config.Level,
			LogSize:      config.MaxFileSize * common.MbToBytes,
			LogFileCount: int(config.FileCount),
			LogTag:       config.Tag,
		})
		if err != nil {
			return nil, err
		}
		return baseLogger, nil
	}
	return nil, errors.New("invalid logger type")
}

// SetDefaultLogger : Set the logger used by the package level helpers
func SetDefaultLogger(name string, config common.LogConfig) error {
	newLogObj, err := NewLogger(name, config)
	if err != nil {
		return err
	}
	if logObj != nil {
		_ = logObj.Destroy()
	}
	logObj = newLogObj
	return nil
}

func GetLoggerObj() Logger {
	return logObj
}

func SetLogLevel(lvl common.LogLevel) {
	logObj.SetLogLevel(lvl)
}

func GetType() string {
	return logObj.GetType()
}

func GetLogLevel() common.LogLevel {
	return logObj.GetLogLevel()
}

func Debug(msg string, args ...interface{}) {
	logObj.Debug(msg, args...)
}

func Trace(msg string, args ...interface{}) {
	logObj.Trace(msg, args...)
}

func Info(msg string, args ...interface{}) {
	logObj.Info(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	logObj.Warn(msg, args...)
}

func Err(msg string, args ...interface{}) {
	logObj.Err(msg, args...)
}

func Crit(msg string, args ...interface{}) {
	logObj.Crit(msg, args...)
}

func Destroy() error {
	return logObj.Destroy()
}

func LogRotate() error {
	return logObj.LogRotate()
}

func init() {
	// Fall back to a silent logger so that the package helpers are always safe
	_ = SetDefaultLogger("silent", common.LogConfig{})
}
