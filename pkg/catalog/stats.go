package catalog

// Stats tracks the counters surfaced in the run summary. Every error a run
// encounters increments Errors exactly once, so nothing fails silently.
type Stats struct {
	ValidRecords  int // records that passed validation during load
	SearchResults int // rows returned by a lookup or search
	BooksAdded    int // records appended by an insert
	Errors        int // all errors: per-line, operation, and fatal
}
