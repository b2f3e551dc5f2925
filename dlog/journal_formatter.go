// Copyright 2016 CoreOS, Inc
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

package dlog

import "github.com/coreos/go-systemd/v22/journal"

// JournalFormatter writes log entries to the systemd journal via sd_journal,
// mapping dlog's Level scale onto journal priorities.
type JournalFormatter struct{}

// NewJournalFormatter returns a Formatter backed by the systemd journal, or
// nil if the journal isn't available on this host (e.g. not running under
// systemd, or running in a container without the socket bind-mounted in).
func NewJournalFormatter() Formatter {
	if !journal.Enabled() {
		return nil
	}
	return &JournalFormatter{}
}

func (j *JournalFormatter) Format(pkg string, level Level, depth int, msg string) {
	_ = journal.Send(pkg+" "+msg, journalPriority(level), map[string]string{
		"PACKAGE": pkg,
	})
}

func journalPriority(level Level) journal.Priority {
	switch level {
	case Critical:
		return journal.PriCrit
	case Error:
		return journal.PriErr
	case Warning:
		return journal.PriWarning
	case Notice:
		return journal.PriNotice
	case Info:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// SetupSink installs the journal formatter when available, otherwise
// fallback().
func SetupSink(fallback func() Formatter) {
	if jf := NewJournalFormatter(); jf != nil {
		SetFormatter(jf)
		return
	}
	SetFormatter(fallback())
}
