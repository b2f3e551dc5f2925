package dlog

import (
	"fmt"

	"github.com/flatecore/sdeflate/inflate"
)

const calldepth = 2

// Logger is a handle scoped to one package path. Unlike capnslog's
// packageLogger, which exposes the full log.Logger-compatible surface
// (Println/Printf/Panic.../Fatal...), this trims down to four leveled
// methods (cmd/sdinflate calls Errorf and Infof), plus Failure, which takes an
// inflate.Status directly instead of a bare string: a caller logs a
// decode failure in terms of this module's own result type, not
// pre-formatted text. inflate.State's block loop is unexported and has no
// hook a caller could observe per block from outside the package, so
// logging here is necessarily call-grained, not block-grained — matching
// spec.md's "logging is strictly a caller concern" boundary, the CORE
// itself never imports dlog.
type Logger struct {
	pkg string
}

// New returns a Logger scoped to pkg. pkg is ordinarily a package import
// path, matching capnslog's convention.
func New(pkg string) *Logger {
	return &Logger{pkg: pkg}
}

func (l *Logger) level() Level { return levelFor(l.pkg) }

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level() < Error {
		return
	}
	emit(l.pkg, Error, calldepth, fmt.Sprintf(format, args...))
}

func (l *Logger) Noticef(format string, args ...interface{}) {
	if l.level() < Notice {
		return
	}
	emit(l.pkg, Notice, calldepth, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level() < Info {
		return
	}
	emit(l.pkg, Info, calldepth, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level() < Debug {
		return
	}
	emit(l.pkg, Debug, calldepth, fmt.Sprintf(format, args...))
}

// Failure logs a non-nil decompression outcome at ERROR, including the
// byte count already committed before the failure.
func (l *Logger) Failure(status inflate.Status, totalOut int) {
	if l.level() < Error {
		return
	}
	emit(l.pkg, Error, calldepth, fmt.Sprintf("decode failed: %s (total_out=%d bytes)", status, totalOut))
}
