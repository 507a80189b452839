package entities

import "time"

// TipoEvento classifies an audit event on a solicitacao.
type TipoEvento string

const (
	EventoCriada          TipoEvento = "CRIADA"
	EventoMarcadoRecebido TipoEvento = "MARCADO_RECEBIDO"
	EventoFinalizado      TipoEvento = "FINALIZADO"
	EventoRecusado        TipoEvento = "RECUSADO"
	EventoComentario      TipoEvento = "COMENTARIO"
)

// SolicitacaoEvento is one append-only audit entry. Events are never mutated
// or deleted and outlive every mutation of the solicitacao itself.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (solicitacao_id-index): solicitacao_id, sort key criado_em
//
// StatusAnterior is empty for CRIADA; COMENTARIO carries the current status
// on both sides.
type SolicitacaoEvento struct {
	ID             string            `json:"id"`
	SolicitacaoID  string            `json:"solicitacao_id"`
	Tipo           TipoEvento        `json:"tipo_evento"`
	StatusAnterior StatusSolicitacao `json:"status_anterior,omitempty"`
	StatusNovo     StatusSolicitacao `json:"status_novo,omitempty"`
	Comentario     string            `json:"comentario"`
	ActorUsuarioID int64             `json:"actor_usuario_id"`
	CriadoEm       time.Time         `json:"criado_em"`
}
