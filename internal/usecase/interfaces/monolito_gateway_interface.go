package interfaces

import (
	"context"
	"inprout_docs/internal/domain/entities"
)

// IMonolitoGateway abstracts the inprout monolith integration API.
//
// AtualizarStatusLancamentos pushes the documentation state of the ledger
// entries (lancamentos) tied to a solicitacao. It is called after the local
// transaction commits; its outcome never rolls the transition back.
type IMonolitoGateway interface {
	AtualizarStatusLancamentos(ctx context.Context, req entities.AtualizarLancamentos) error
	BuscarInfoOS(ctx context.Context, osID int64) (entities.OSInfo, error)
}
