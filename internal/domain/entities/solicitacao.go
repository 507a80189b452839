package entities

import "time"

// StatusSolicitacao is the lifecycle state of a document request.
//
// Allowed transitions:
//
//	AGUARDANDO_RECEBIMENTO -> RECEBIDO -> FINALIZADO
//	RECEBIDO -> AGUARDANDO_RECEBIMENTO (recusa)
//
// FINALIZADO is terminal. FINALIZADO_FORA_PRAZO is a legacy value still found
// in old rows; it is never written anymore and is merged with FINALIZADO when
// totaling.
type StatusSolicitacao string

const (
	StatusAguardandoRecebimento StatusSolicitacao = "AGUARDANDO_RECEBIMENTO"
	StatusRecebido              StatusSolicitacao = "RECEBIDO"
	StatusFinalizado            StatusSolicitacao = "FINALIZADO"
	StatusFinalizadoForaPrazo   StatusSolicitacao = "FINALIZADO_FORA_PRAZO"
)

// ParseStatusSolicitacao validates a status coming from the outside (query
// params, stored rows).
func ParseStatusSolicitacao(s string) (StatusSolicitacao, bool) {
	switch StatusSolicitacao(s) {
	case StatusAguardandoRecebimento, StatusRecebido, StatusFinalizado, StatusFinalizadoForaPrazo:
		return StatusSolicitacao(s), true
	}
	return "", false
}

// Solicitacao tracks one document request tied to a service order (OS).
//
// Storage model (DynamoDB):
//   - PK: id
//   - (os_id, documento_id) uniqueness: companion item os#<osId>#doc#<docId>
//     written in the same transaction
//
// The assigned documentista is the only actor allowed to finalizar/recusar.
// Rows are never deleted; Ativo is a soft flag.
type Solicitacao struct {
	ID             string            `json:"id"`
	OSID           int64             `json:"os_id"`
	DocumentoID    string            `json:"documento_id"`
	DocumentistaID int64             `json:"documentista_id"`
	Status         StatusSolicitacao `json:"status"`
	ProvaEnvio     string            `json:"prova_envio,omitempty"`
	Ativo          bool              `json:"ativo"`
	Segmento       string            `json:"segmento,omitempty"`
	LancamentoIDs  []int64           `json:"lancamento_ids,omitempty"`
	CriadoEm       time.Time         `json:"criado_em"`
	AtualizadoEm   time.Time         `json:"atualizado_em"`
	RecebidoEm     *time.Time        `json:"recebido_em,omitempty"`
	FinalizadoEm   *time.Time        `json:"finalizado_em,omitempty"`
}

// Finalizada reports whether the request reached a terminal state.
func (s Solicitacao) Finalizada() bool {
	return s.Status == StatusFinalizado || s.Status == StatusFinalizadoForaPrazo
}
