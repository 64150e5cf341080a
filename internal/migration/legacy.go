package migration

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// Keys the old schema stored its data under.
const (
	LegacyKeyCollaborators = "colaboradores"
	LegacyKeyInvoices      = "notasFiscais"
)

// Kind discriminators of the old flat collaborator collection.
const (
	legacyKindRepresentative = "representative"
	legacyKindCompany        = "company"
)

// looseString accepts a JSON string or number.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}

		*s = looseString(v)

		return nil
	}

	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	*s = looseString(b)

	return nil
}

// looseFloat accepts a JSON number or a numeric string; anything else is 0.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = looseFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = looseFloat(v)
			return nil
		}
	}

	*f = 0

	return nil
}

// LegacyCollaborator is one record of the old collection that mixed
// representatives, companies and staff behind a kind discriminator.
type LegacyCollaborator struct {
	ID            looseString `json:"id"`
	Name          looseString `json:"nome"`
	Email         looseString `json:"email"`
	Phone         looseString `json:"telefone"`
	Role          looseString `json:"cargo"`
	Department    looseString `json:"departamento"`
	Kind          looseString `json:"tipo"`
	Status        looseString `json:"status"`
	AdmissionDate looseString `json:"dataAdmissao"`
}

func (c LegacyCollaborator) kind() string {
	switch strings.ToLower(strings.TrimSpace(string(c.Kind))) {
	case "vendedor", legacyKindRepresentative:
		return legacyKindRepresentative
	case "empresa", legacyKindCompany:
		return legacyKindCompany
	}

	return string(c.Kind)
}

// LegacyInvoice is one record of the old flat invoice list.
type LegacyInvoice struct {
	ID               looseString `json:"id"`
	Number           looseString `json:"numero"`
	Client           looseString `json:"cliente"`
	CollaboratorID   looseString `json:"colaboradorId"`
	CollaboratorName looseString `json:"colaboradorNome"`
	Value            looseFloat  `json:"valor"`
	IssueDate        looseString `json:"dataEmissao"`
	DueDate          looseString `json:"dataVencimento"`
	SentDate         looseString `json:"dataEnvio"`
	Status           looseString `json:"status"`
	Description      looseString `json:"descricao"`
	Category         looseString `json:"categoria"`
}

// Legacy holds the collections of the old schema.
type Legacy struct {
	Collaborators []LegacyCollaborator
	Invoices      []LegacyInvoice
}

// decodeList decodes a legacy array, dropping elements that do not fit the
// record shape. Anything that is not an array decodes to nothing.
func decodeList[T any](raw json.RawMessage) []T {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	out := make([]T, 0, len(elems))

	for _, e := range elems {
		var item T
		if err := json.Unmarshal(e, &item); err != nil {
			continue
		}

		out = append(out, item)
	}

	return out
}

// unwrapStored handles values saved as JSON-encoded strings, the way
// browser storage keeps them.
func unwrapStored(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed
	}

	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return trimmed
	}

	return json.RawMessage(inner)
}

func legacyDate(s looseString) billing.Date {
	d, err := billing.ParseDate(strings.TrimSpace(string(s)))
	if err != nil {
		return billing.Date{}
	}

	return d
}

func legacyRecordStatus(s looseString) billing.RecordStatus {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "inativo", "inativa", string(billing.RecordInactive):
		return billing.RecordInactive
	}

	return billing.RecordActive
}

// legacyInvoiceStatus maps known values and keeps unknown ones verbatim.
func legacyInvoiceStatus(s looseString) billing.Status {
	raw := strings.TrimSpace(string(s))
	if raw == "" {
		return billing.StatusNotIssued
	}

	st, err := billing.ParseStatus(raw)
	if err != nil {
		return billing.Status(raw)
	}

	return st
}
