// Package xes parses XES event logs into interned traces.
package xes

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/treealign/trace"
)

// conceptName is the XES attribute key carrying an event's activity name.
const conceptName = "concept:name"

// Sentinel errors for log reading.
var (
	// ErrBadXES indicates the input is not well-formed XES XML.
	ErrBadXES = errors.New("xes: malformed event log")
)

// Log is an event log reduced to its interned traces.
type Log struct {
	// Traces holds one interned trace per <trace> element, in file order.
	Traces []trace.Trace

	// Events counts all events carrying a concept:name across the log.
	Events int
}

// raw document shape; only the elements conformance checking needs.
type xesLog struct {
	XMLName xml.Name   `xml:"log"`
	Traces  []xesTrace `xml:"trace"`
}

type xesTrace struct {
	Events []xesEvent `xml:"event"`
}

type xesEvent struct {
	Strings []xesAttr `xml:"string"`
}

type xesAttr struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// ReadLog decodes one XES document from r, interning every activity name
// through alpha. Events without a concept:name attribute are skipped; empty
// traces are kept (they are legitimate alignment inputs).
func ReadLog(r io.Reader, alpha *trace.Alphabet) (*Log, error) {
	var doc xesLog
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadXES, err)
	}

	log := &Log{Traces: make([]trace.Trace, 0, len(doc.Traces))}
	var (
		tr   trace.Trace
		name string
		ok   bool
	)
	for _, t := range doc.Traces {
		tr = make(trace.Trace, 0, len(t.Events))
		for _, ev := range t.Events {
			if name, ok = eventName(ev); ok {
				tr = append(tr, alpha.Intern(name))
				log.Events++
			}
		}
		log.Traces = append(log.Traces, tr)
	}

	return log, nil
}

// ReadFile opens path and decodes it with ReadLog.
func ReadFile(path string, alpha *trace.Alphabet) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLog(f, alpha)
}

// eventName extracts the concept:name attribute of one event.
func eventName(ev xesEvent) (string, bool) {
	for _, attr := range ev.Strings {
		if attr.Key == conceptName {
			return attr.Value, true
		}
	}

	return "", false
}
