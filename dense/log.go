// SPDX-License-Identifier: MIT

package dense

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// logger receives kernel traces (pivot swaps, singular detection).
// Swapped atomically so SetLogger is safe alongside running kernels.
var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.StandardLogger())
}

// SetLogger replaces the logger used for kernel traces. Passing nil restores
// logrus.StandardLogger(). Traces are emitted at TraceLevel only.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.StandardLogger()
	}
	logger.Store(l)
}

// tracef emits a structured trace line when the current logger has
// TraceLevel enabled; otherwise it costs one atomic load and a level check.
func tracef(op string, fields log.Fields, format string, args ...interface{}) {
	l := logger.Load()
	if !l.IsLevelEnabled(log.TraceLevel) {
		return
	}
	fields["op"] = op
	l.WithFields(fields).Tracef(format, args...)
}
