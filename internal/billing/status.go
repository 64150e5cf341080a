package billing

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an invoice. The listed order is the
// natural progression, but any state may be set from any other unless the
// service runs in strict mode.
type Status string

const (
	StatusNotIssued Status = "not_issued"
	StatusIssued    Status = "issued"
	StatusReviewed  Status = "reviewed"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
)

// Statuses lists every status in progression order.
var Statuses = []Status{StatusNotIssued, StatusIssued, StatusReviewed, StatusSent, StatusPaid}

var statusLabels = map[Status]string{
	StatusNotIssued: "Não Emitida",
	StatusIssued:    "Emitida",
	StatusReviewed:  "Conferida",
	StatusSent:      "Enviada",
	StatusPaid:      "Paga",
}

// legacyStatuses maps the stored Portuguese values of the old schema.
var legacyStatuses = map[string]Status{
	"não emitida": StatusNotIssued,
	"nao emitida": StatusNotIssued,
	"emitida":     StatusIssued,
	"conferida":   StatusReviewed,
	"enviada":     StatusSent,
	"paga":        StatusPaid,
	"vencida":     StatusNotIssued,
	"pendente":    StatusNotIssued,
}

// Label is the display text for the status.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}

	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) rank() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}

	return -1
}

// ParseStatus accepts the canonical values and the legacy Portuguese ones.
func ParseStatus(s string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	if st := Status(v); st.Valid() {
		return st, nil
	}

	if st, ok := legacyStatuses[v]; ok {
		return st, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// CanTransition reports whether from→to is allowed. Without strict mode
// every transition is allowed; with it only forward moves (or staying put)
// are.
func CanTransition(from, to Status, strict bool) bool {
	if !to.Valid() {
		return false
	}

	if !strict || !from.Valid() {
		return true
	}

	return to.rank() >= from.rank()
}
