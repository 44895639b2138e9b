package record

// StatusProcessed is the status every record is created with
const StatusProcessed = "processed"

// Record is a single processed input, tagged with its position in the
// processor history
type Record struct {
	// ID is the number of records produced before this one
	ID uint64 `json:"id" yaml:"id"`
	// Content is the caller-supplied input, kept as-is
	Content any `json:"content" yaml:"content"`
	// Status is always StatusProcessed
	Status string `json:"status" yaml:"status"`
}

// New creates a processed record for the given position and content
func New(id uint64, content any) Record {
	return Record{
		ID:      id,
		Content: content,
		Status:  StatusProcessed,
	}
}
