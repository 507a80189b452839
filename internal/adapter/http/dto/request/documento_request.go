package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CriarDocumentoRequest struct {
	Nome            string  `json:"nome" binding:"required"`
	DocumentistaIDs []int64 `json:"documentistaIds"`
}

type AtualizarDocumentoRequest struct {
	Nome            string  `json:"nome" binding:"required"`
	DocumentistaIDs []int64 `json:"documentistaIds"`
}

type PrecificacaoItemRequest struct {
	UsuarioID int64           `json:"usuarioId"`
	Valor     decimal.Decimal `json:"valor"`
}

type PrecificarDocumentoRequest struct {
	Precificacoes []PrecificacaoItemRequest `json:"precificacoes"`
}

func (r CriarDocumentoRequest) NomeLimpo() string {
	return strings.TrimSpace(r.Nome)
}

func (r AtualizarDocumentoRequest) NomeLimpo() string {
	return strings.TrimSpace(r.Nome)
}
