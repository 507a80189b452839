package entities

import "time"

// Usuario is the user-directory projection consumed by this service. Only
// display/enrichment data; the directory owns the record.
type Usuario struct {
	ID        int64    `json:"id"`
	Nome      string   `json:"nome"`
	Roles     []string `json:"roles"`
	Segmentos []string `json:"segmentos"`
}

// OSInfo is the service-order projection returned by the monolito.
type OSInfo struct {
	OSID     int64  `json:"os_id"`
	Segmento string `json:"segmento"`
}

// AtualizarLancamentos is the sync intent sent to the monolito when a
// solicitacao starts or finishes. Documentacao carries the wire values the
// monolito expects: "NOK" while documentation is pending, "OK" once done.
type AtualizarLancamentos struct {
	LancamentoIDs []int64   `json:"lancamentoIds"`
	Documentacao  string    `json:"documentacao"`
	Plano         time.Time `json:"planoDocumentacao"`
	Situacao      string    `json:"situacao"`
}
