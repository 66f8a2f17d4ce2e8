package status

// Status is the overall state reported by the daily status file.
type Status string

const (
	OK        Status = "OK"
	Attention Status = "ATTENTION"
	Error     Status = "ERROR"
	Paused    Status = "PAUSED"
)

// FallbackSymbol is shown for statuses without a symbol of their own.
const FallbackSymbol = "⚪"

var symbols = map[Status]string{
	OK:        "🟢",
	Attention: "🟠",
	Error:     "🔴",
	Paused:    "⚪",
}

// Symbol returns the indicator symbol for s, or FallbackSymbol.
func Symbol(s Status) string {
	if sym, ok := symbols[s]; ok {
		return sym
	}
	return FallbackSymbol
}

// Known reports whether s is one of the defined statuses.
func (s Status) Known() bool {
	_, ok := symbols[s]
	return ok
}

// Links points at the published artifacts of the latest run.
type Links struct {
	Latest   string `json:"latest"`
	Manifest string `json:"manifest"`
	Crate    string `json:"crate"`
}

// Record is the daily status document. Fields are not validated; missing
// ones decode to zero values and render as empty.
type Record struct {
	Status      Status `json:"status"`
	AsOfUTC     string `json:"as_of_utc"`
	Designation string `json:"designation"`
	EventID     string `json:"event_id"`
	Summary     string `json:"summary"`
	Gate        string `json:"gate"`
	ProofType   string `json:"proof_type"`
	Links       Links  `json:"links"`
}

// Symbol returns the indicator symbol of the record's status.
func (r Record) Symbol() string {
	return Symbol(r.Status)
}
