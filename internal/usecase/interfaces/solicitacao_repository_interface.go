package interfaces

import (
	"context"
	"inprout_docs/internal/domain/entities"
)

// FiltroSolicitacao narrows List results. Zero values mean "no filter".
type FiltroSolicitacao struct {
	OSID           int64
	Status         entities.StatusSolicitacao
	DocumentistaID int64
	Segmento       string
}

// ISolicitacaoRepository abstracts DynamoDB persistence for Solicitacao.
//
// Lifecycle writes are transactional: the solicitacao mutation and its audit
// event commit together or not at all.
//
//   - CreateWithEvento returns a zero-value Solicitacao when another request
//     already exists for the same (os_id, documento_id) pair; the uniqueness
//     check is a storage-layer condition, so concurrent creators race safely.
//   - UpdateWithEvento conditions the write on the solicitacao still being in
//     expectedStatus and returns a zero value when it no longer is.
type ISolicitacaoRepository interface {
	CreateWithEvento(ctx context.Context, s entities.Solicitacao, ev entities.SolicitacaoEvento) (entities.Solicitacao, error)
	UpdateWithEvento(ctx context.Context, s entities.Solicitacao, expectedStatus entities.StatusSolicitacao, ev entities.SolicitacaoEvento) (entities.Solicitacao, error)
	GetByID(ctx context.Context, id string) (entities.Solicitacao, error)
	List(ctx context.Context, filtro FiltroSolicitacao) ([]entities.Solicitacao, error)
}
