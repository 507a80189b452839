package interfaces

import (
	"context"
	"inprout_docs/internal/domain/entities"
)

// IEventoRepository abstracts the append-only audit trail.
//
// Append exists for events with no accompanying state change (COMENTARIO);
// lifecycle events ride the solicitacao repository transaction instead.
// ListBySolicitacaoID returns the full history ordered by criado_em asc.
type IEventoRepository interface {
	Append(ctx context.Context, ev entities.SolicitacaoEvento) (entities.SolicitacaoEvento, error)
	ListBySolicitacaoID(ctx context.Context, solicitacaoID string) ([]entities.SolicitacaoEvento, error)
}
