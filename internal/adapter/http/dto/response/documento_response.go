package response

import (
	"time"

	"github.com/shopspring/decimal"

	"inprout_docs/internal/domain/entities"
)

type PrecificacaoResponse struct {
	UsuarioID int64           `json:"usuarioId"`
	Valor     decimal.Decimal `json:"valor"`
}

type DocumentoResponse struct {
	ID              string                 `json:"id"`
	Nome            string                 `json:"nome"`
	Ativo           bool                   `json:"ativo"`
	DocumentistaIDs []int64                `json:"documentistaIds"`
	Precificacoes   []PrecificacaoResponse `json:"precificacoes"`
	CriadoEm        time.Time              `json:"criadoEm"`
	AtualizadoEm    time.Time              `json:"atualizadoEm"`
}

// DocumentoResumoResponse is the short form embedded in solicitacao payloads.
type DocumentoResumoResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Ativo bool   `json:"ativo"`
}

func FromDocumento(d entities.Documento) DocumentoResponse {
	precos := make([]PrecificacaoResponse, 0, len(d.Precificacoes))
	for _, p := range d.Precificacoes {
		precos = append(precos, PrecificacaoResponse{UsuarioID: p.UsuarioID, Valor: p.Valor})
	}
	documentistas := d.DocumentistasIDs
	if documentistas == nil {
		documentistas = []int64{}
	}
	return DocumentoResponse{
		ID:              d.ID,
		Nome:            d.Nome,
		Ativo:           d.Ativo,
		DocumentistaIDs: documentistas,
		Precificacoes:   precos,
		CriadoEm:        d.CriadoEm,
		AtualizadoEm:    d.AtualizadoEm,
	}
}

func FromDocumentoList(docs []entities.Documento) []DocumentoResponse {
	out := make([]DocumentoResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocumento(d))
	}
	return out
}

func ResumoFromDocumento(d entities.Documento) *DocumentoResumoResponse {
	if d.ID == "" {
		return nil
	}
	return &DocumentoResumoResponse{ID: d.ID, Nome: d.Nome, Ativo: d.Ativo}
}
