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
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/tierstore/tierstore/common"
)

type LogFileConfig struct {
	LogFile      string
	LogSize      uint64
	LogFileCount int
	LogLevel     common.LogLevel
	LogTag       string
}

// BaseLogger : Default file based logger
type BaseLogger struct {
	channel     chan string
	workerDone  sync.WaitGroup
	logLevel    common.LogLevel
	logLevelMtx sync.RWMutex

	fileConfig  LogFileConfig
	logFileMtx  sync.Mutex
	logFile     *os.File
	procPID     int
	currentSize uint64
	logger      *log.Logger
}

const defaultLogSize = uint64(100 * common.MbToBytes)
const defaultLogFileCount = 10

func newBaseLogger(config LogFileConfig) (*BaseLogger, error) {
	l := &BaseLogger{
		fileConfig: config,
		procPID:    os.Getpid(),
	}

	if l.fileConfig.LogFile == "" {
		l.fileConfig.LogFile = common.DefaultLogFilePath
	}
	if l.fileConfig.LogSize == 0 {
		l.fileConfig.LogSize = defaultLogSize
	}
	if l.fileConfig.LogFileCount == 0 {
		l.fileConfig.LogFileCount = defaultLogFileCount
	}
	if config.LogLevel == common.ELogLevelInvalid {
		l.fileConfig.LogLevel = common.ELogLevelWarning
	} else {
		l.fileConfig.LogLevel = config.LogLevel
	}
	l.logLevel = l.fileConfig.LogLevel

	_ = os.MkdirAll(filepath.Dir(l.fileConfig.LogFile), 0755)
	if err := l.openLogFile(); err != nil {
		return nil, err
	}

	l.channel = make(chan string, 10000)
	l.workerDone.Add(1)
	go l.logDumper()

	return l, nil
}

func (l *BaseLogger) GetType() string {
	return "base"
}

func (l *BaseLogger) GetLogLevel() common.LogLevel {
	l.logLevelMtx.RLock()
	defer l.logLevelMtx.RUnlock()
	return l.logLevel
}

func (l *BaseLogger) SetLogLevel(level common.LogLevel) {
	l.logLevelMtx.Lock()
	defer l.logLevelMtx.Unlock()
	l.logLevel = level
}

func (l *BaseLogger) SetLogFile(name string) error {
	l.logFileMtx.Lock()
	defer l.logFileMtx.Unlock()

	if l.logFile != nil {
		_ = l.logFile.Close()
	}
	l.fileConfig.LogFile = name
	return l.openLogFile()
}

func (l *BaseLogger) SetMaxLogSize(size int) {
	l.fileConfig.LogSize = uint64(size) * common.MbToBytes
}

func (l *BaseLogger) SetLogFileCount(count int) {
	l.fileConfig.LogFileCount = count
}

func (l *BaseLogger) Destroy() error {
	if l.channel != nil {
		close(l.channel)
		l.workerDone.Wait()
		l.channel = nil
	}
	l.logFileMtx.Lock()
	defer l.logFileMtx.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

func (l *BaseLogger) Debug(format string, args ...interface{}) {
	l.write(common.ELogLevelDebug, format, args...)
}

func (l *BaseLogger) Trace(format string, args ...interface{}) {
	l.write(common.ELogLevelTrace, format, args...)
}

func (l *BaseLogger) Info(format string, args ...interface{}) {
	l.write(common.ELogLevelInfo, format, args...)
}

func (l *BaseLogger) Warn(format string, args ...interface{}) {
	l.write(common.ELogLevelWarning, format, args...)
}

func (l *BaseLogger) Err(format string, args ...interface{}) {
	l.write(common.ELogLevelErr, format, args...)
}

func (l *BaseLogger) Crit(format string, args ...interface{}) {
	l.write(common.ELogLevelCrit, format, args...)
}

// write : Format the message and hand it to the dumper goroutine. Messages
// above the configured verbosity are dropped here.
func (l *BaseLogger) write(level common.LogLevel, format string, args ...interface{}) {
	if level > l.GetLogLevel() {
		return
	}

	msg := fmt.Sprintf(format, args...)

	track := ""
	if timeTracker {
		track = time.Now().Format(time.RFC3339) + " : "
	}

	// Record the caller of the package level helper
	_, file, line, ok := runtime.Caller(3)
	if ok {
		file = filepath.Base(file)
		msg = fmt.Sprintf("%s[%d] : %s : %s%s [%s (%d)]",
			l.fileConfig.LogTag, l.procPID, level.String(), track, msg, file, line)
	} else {
		msg = fmt.Sprintf("%s[%d] : %s : %s%s",
			l.fileConfig.LogTag, l.procPID, level.String(), track, msg)
	}

	defer func() {
		// The channel is closed on Destroy, do not crash late writers
		_ = recover()
	}()
	l.channel <- msg
}

func (l *BaseLogger) logDumper() {
	defer l.workerDone.Done()

	for msg := range l.channel {
		l.logFileMtx.Lock()
		if l.logger != nil {
			l.logger.Println(msg)
			l.currentSize += uint64(len(msg) + 1)
		}
		rotate := l.currentSize >= l.fileConfig.LogSize
		l.logFileMtx.Unlock()

		if rotate {
			_ = l.LogRotate()
		}
	}
}

// LogRotate : Shift the rotation chain by one and start a fresh log file
func (l *BaseLogger) LogRotate() error {
	l.logFileMtx.Lock()
	defer l.logFileMtx.Unlock()

	if l.logFile != nil {
		_ = l.logFile.Close()
		l.logFile = nil
	}

	for i := l.fileConfig.LogFileCount - 2; i >= 0; i-- {
		src := l.rotatedName(i)
		dst := l.rotatedName(i + 1)
		_ = os.Rename(src, dst)
	}

	return l.openLogFile()
}

func (l *BaseLogger) rotatedName(index int) string {
	if index == 0 {
		return l.fileConfig.LogFile
	}
	return fmt.Sprintf("%s.%d", l.fileConfig.LogFile, index)
}

func (l *BaseLogger) openLogFile() error {
	f, err := os.OpenFile(l.fileConfig.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	l.logFile = f
	info, err := f.Stat()
	if err == nil {
		l.currentSize = uint64(info.Size())
	} else {
		l.currentSize = 0
	}
	l.logger = log.New(f, "", log.LstdFlags)
	return nil
}
