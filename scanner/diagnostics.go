package scanner

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// --- Diagnostics -----------------------------------------------------------

// Sink receives lexical errors from a scanner. Sinks are called synchronously,
// in the order errors are detected.
type Sink interface {
	Report(line int, where, message string)
}

// Format renders a diagnostic as
//
//    [line {line}] Error{where}: {message}
//
func Format(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// Error reports message for line to sink, with an empty location.
func Error(sink Sink, line int, message string) {
	sink.Report(line, "", message)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line int, where, message string)

// Report is part of interface Sink.
func (f SinkFunc) Report(line int, where, message string) {
	f(line, where, message)
}

// StreamSink writes one formatted line per diagnostic to W.
type StreamSink struct {
	W io.Writer
}

// Report is part of interface Sink.
func (s StreamSink) Report(line int, where, message string) {
	if _, err := fmt.Fprintln(s.W, Format(line, where, message)); err != nil {
		tracer().Errorf("cannot write diagnostic: %v", err)
	}
}

// Tee returns a sink forwarding every diagnostic to all of sinks, in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(line int, where, message string) {
		for _, sink := range sinks {
			sink.Report(line, where, message)
		}
	})
}

// Diagnostic is a lexical error, as reported to a sink.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) Error() string {
	return Format(d.Line, d.Where, d.Message)
}

// Collector is a sink which keeps all diagnostics for later inspection.
// The zero value is not usable, create one with NewCollector.
type Collector struct {
	diagnostics *arraylist.List
	lines       *treeset.Set
}

var _ Sink = (*Collector)(nil)

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		diagnostics: arraylist.New(),
		lines:       treeset.NewWith(utils.IntComparator),
	}
}

// Report is part of interface Sink.
func (c *Collector) Report(line int, where, message string) {
	c.diagnostics.Add(Diagnostic{Line: line, Where: where, Message: message})
	c.lines.Add(line)
}

// Len returns the number of diagnostics collected.
func (c *Collector) Len() int {
	return c.diagnostics.Size()
}

// Diagnostics returns all diagnostics in the order they have been reported.
func (c *Collector) Diagnostics() []Diagnostic {
	d := make([]Diagnostic, 0, c.diagnostics.Size())
	it := c.diagnostics.Iterator()
	for it.Next() {
		d = append(d, it.Value().(Diagnostic))
	}
	return d
}

// Lines returns the distinct lines with diagnostics, in ascending order.
func (c *Collector) Lines() []int {
	l := make([]int, 0, c.lines.Size())
	for _, v := range c.lines.Values() {
		l = append(l, v.(int))
	}
	return l
}

// Reset removes all diagnostics.
func (c *Collector) Reset() {
	c.diagnostics.Clear()
	c.lines.Clear()
}
