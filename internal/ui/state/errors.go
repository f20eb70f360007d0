package state

// ErrorKind classifies a recorded failure.
type ErrorKind int

const (
	KindGatewayFailure ErrorKind = iota
	KindAlreadyCheckedOut
	KindCannotMergeSelf
	KindNoSelection
)

func (k ErrorKind) String() string {
	switch k {
	case KindAlreadyCheckedOut:
		return "already checked out"
	case KindCannotMergeSelf:
		return "cannot merge self"
	case KindNoSelection:
		return "no selection"
	default:
		return "git failure"
	}
}

// ErrorRecord is a single user-visible failure.
type ErrorRecord struct {
	Kind    ErrorKind
	Message string
}

// ErrorSink accumulates failures until they are dismissed.
type ErrorSink struct {
	records []ErrorRecord
}

// Push appends a record.
func (s *ErrorSink) Push(record ErrorRecord) {
	s.records = append(s.records, record)
}

// Records returns the accumulated records in arrival order.
func (s *ErrorSink) Records() []ErrorRecord {
	dup := make([]ErrorRecord, len(s.records))
	copy(dup, s.records)
	return dup
}

// Len reports how many records are pending.
func (s *ErrorSink) Len() int {
	return len(s.records)
}

// Clear drops every record.
func (s *ErrorSink) Clear() {
	s.records = nil
}
