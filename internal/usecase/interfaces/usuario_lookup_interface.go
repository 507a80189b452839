package interfaces

import (
	"context"
	"inprout_docs/internal/domain/entities"
)

// IUsuarioLookup resolves usuario display data from the user directory.
// Implementations cache by id; lookups are best-effort enrichment only.
type IUsuarioLookup interface {
	BuscarUsuario(ctx context.Context, id int64) (entities.Usuario, error)
}
