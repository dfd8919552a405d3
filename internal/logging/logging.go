// Copyright 2016-2026, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging sends diagnostics to the user, either through the Pulumi engine while a program runs or
// through glog from the offline tools.
package logging

import (
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// The set of logs available to show to the user.
type Log interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Logger is a Log that can be associated with a resource.
type Logger interface {
	Log

	// For returns a Log whose messages are attached to r.
	For(r pulumi.Resource) Log
}

// Debugf formats according to a format specifier and logs at debug level.
func Debugf(l Log, format string, args ...any) { l.Debug(fmt.Sprintf(format, args...)) }

// Infof formats according to a format specifier and logs at info level.
func Infof(l Log, format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }

// NewPulumiLogger logs through the engine the program is running under. Messages show up in the CLI output
// and in the update's event log.
func NewPulumiLogger(ctx *pulumi.Context) Logger {
	return &pulumiLog{log: ctx.Log}
}

type pulumiLog struct {
	log pulumi.Log
	res pulumi.Resource
}

var _ Logger = (*pulumiLog)(nil)

func (l *pulumiLog) For(r pulumi.Resource) Log {
	return &pulumiLog{log: l.log, res: r}
}

func (l *pulumiLog) args() *pulumi.LogArgs {
	if l.res == nil {
		return nil
	}
	return &pulumi.LogArgs{Resource: l.res}
}

// Failing to deliver a diagnostic is not worth failing the program over.
func (l *pulumiLog) Debug(msg string) { _ = l.log.Debug(msg, l.args()) }
func (l *pulumiLog) Info(msg string)  { _ = l.log.Info(msg, l.args()) }
func (l *pulumiLog) Warn(msg string)  { _ = l.log.Warn(msg, l.args()) }
func (l *pulumiLog) Error(msg string) { _ = l.log.Error(msg, l.args()) }

// NewGlogLogger logs through glog. Debug messages need -v=9.
func NewGlogLogger() Logger {
	return glogLog{}
}

type glogLog struct{}

var _ Logger = glogLog{}

func (g glogLog) For(pulumi.Resource) Log { return g }
func (glogLog) Debug(msg string)          { glog.V(9).Info(msg) }
func (glogLog) Info(msg string)           { glog.Info(msg) }
func (glogLog) Warn(msg string)           { glog.Warning(msg) }
func (glogLog) Error(msg string)          { glog.Error(msg) }

// NewDiscardLogger creates a logger that ignores all messages.
func NewDiscardLogger() Logger {
	return &discardLogger{}
}

type discardLogger struct{}

var _ Logger = (*discardLogger)(nil)

func (dl *discardLogger) For(pulumi.Resource) Log { return dl }
func (*discardLogger) Debug(msg string)           {}
func (*discardLogger) Info(msg string)            {}
func (*discardLogger) Warn(msg string)            {}
func (*discardLogger) Error(msg string)           {}

// Entry is a message captured by a RecordingLogger.
type Entry struct {
	Level    string
	Message  string
	Resource bool
}

// RecordingLogger keeps every message in memory.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Logger = (*RecordingLogger)(nil)

// NewRecordingLogger returns an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) For(pulumi.Resource) Log {
	return &resourceRecorder{r}
}

func (r *RecordingLogger) Debug(msg string) { r.record("debug", msg, false) }
func (r *RecordingLogger) Info(msg string)  { r.record("info", msg, false) }
func (r *RecordingLogger) Warn(msg string)  { r.record("warn", msg, false) }
func (r *RecordingLogger) Error(msg string) { r.record("error", msg, false) }

// Entries returns a copy of the messages logged so far.
func (r *RecordingLogger) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

func (r *RecordingLogger) record(level, msg string, res bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Resource: res})
}

type resourceRecorder struct{ r *RecordingLogger }

func (rr *resourceRecorder) Debug(msg string) { rr.r.record("debug", msg, true) }
func (rr *resourceRecorder) Info(msg string)  { rr.r.record("info", msg, true) }
func (rr *resourceRecorder) Warn(msg string)  { rr.r.record("warn", msg, true) }
func (rr *resourceRecorder) Error(msg string) { rr.r.record("error", msg, true) }
