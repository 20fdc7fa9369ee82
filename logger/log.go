// This file is part of JollyCV-Core.
//
// JollyCV-Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// JollyCV-Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with JollyCV-Core.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// logger is not exposed outside of the package. the package level functions
// operate on the central instance.
type logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// index into entries of the first entry not yet written by WriteRecent
	recent int

	echo io.Writer

	atomicTimestamp atomic.Value // time.Time
}

func newLogger(maxEntries int) *logger {
	l := &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
	l.atomicTimestamp.Store(time.Time{})
	return l
}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || detail != e.detail || tag != e.tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	l.atomicTimestamp.Store(e.Timestamp)

	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		l.recent -= trim
		if l.recent < 0 {
			l.recent = 0
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

func (l *logger) logf(tag, detail string, args ...interface{}) {
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recent = 0
}

func (l *logger) write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

func (l *logger) writeRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for ; l.recent < len(l.entries); l.recent++ {
		io.WriteString(output, l.entries[l.recent].String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()
	if number > len(l.entries) {
		number = len(l.entries)
	}
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

func (l *logger) setEcho(output io.Writer, writeExisting bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
	if writeExisting && output != nil {
		for i := range l.entries {
			io.WriteString(output, l.entries[i].String())
		}
	}
}

func (l *logger) borrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
