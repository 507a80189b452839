package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Precificacao is the compensation owed to one documentista for producing
// this document type. One entry per documentista; replaced wholesale when the
// document is re-priced, never patched.
type Precificacao struct {
	UsuarioID int64           `json:"usuario_id"`
	Valor     decimal.Decimal `json:"valor"`
}

// Documento is a requestable document type (e.g. NDA, ART) persisted in
// DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - name uniqueness: companion item nome#<lowercase> in the same table
//
// Invariant: every Precificacoes entry belongs to a usuario listed in
// DocumentistasIDs; removing a documentista cascades its pricing entry away.
type Documento struct {
	ID               string         `json:"id"`
	Nome             string         `json:"nome"`
	Ativo            bool           `json:"ativo"`
	DocumentistasIDs []int64        `json:"documentistas_ids"`
	Precificacoes    []Precificacao `json:"precificacoes"`
	CriadoEm         time.Time      `json:"criado_em"`
	AtualizadoEm     time.Time      `json:"atualizado_em"`
}

// TemDocumentista reports whether usuarioID is assignable to this document.
func (d Documento) TemDocumentista(usuarioID int64) bool {
	for _, id := range d.DocumentistasIDs {
		if id == usuarioID {
			return true
		}
	}
	return false
}

// ValorDoDocumentista returns the pricing amount for usuarioID, or ok=false
// when the documentista has no entry on this document.
func (d Documento) ValorDoDocumentista(usuarioID int64) (decimal.Decimal, bool) {
	for _, p := range d.Precificacoes {
		if p.UsuarioID == usuarioID {
			return p.Valor, true
		}
	}
	return decimal.Decimal{}, false
}
