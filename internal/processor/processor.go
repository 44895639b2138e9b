package processor

import (
	"github.com/withobsrvr/recordctl/internal/record"
)

// Processor turns inputs into records and keeps every record it produced,
// in the order it produced them.
//
// A Processor is not safe for concurrent use.
type Processor struct {
	records []record.Record
}

// New creates a processor with an empty history
func New() *Processor {
	return &Processor{}
}

// Process wraps input into a record whose ID is the current history length,
// appends it to the history and returns it. Any input is accepted.
func (p *Processor) Process(input any) record.Record {
	rec := record.New(uint64(len(p.records)), input)
	p.records = append(p.records, rec)
	return rec
}

// Len returns the number of records processed so far
func (p *Processor) Len() int {
	return len(p.records)
}

// Records returns a copy of the history in insertion order
func (p *Processor) Records() []record.Record {
	out := make([]record.Record, len(p.records))
	copy(out, p.records)
	return out
}
