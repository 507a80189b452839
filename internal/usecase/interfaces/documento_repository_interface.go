package interfaces

import (
	"context"
	"inprout_docs/internal/domain/entities"
)

// IDocumentoRepository abstracts DynamoDB persistence for Documento.
//
// Name uniqueness lives in the storage layer: Create/Update return a
// zero-value Documento when another document already holds the (case
// insensitive) nome, so a losing concurrent writer surfaces as a conflict
// instead of a generic failure.
type IDocumentoRepository interface {
	Create(ctx context.Context, d entities.Documento) (entities.Documento, error)
	// Update persists d; nomeAnterior is the name currently stored, so the
	// repository can move the uniqueness marker when the document was renamed.
	Update(ctx context.Context, d entities.Documento, nomeAnterior string) (entities.Documento, error)
	GetByID(ctx context.Context, id string) (entities.Documento, error)
	List(ctx context.Context) ([]entities.Documento, error)
}
