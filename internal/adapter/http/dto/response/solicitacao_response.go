package response

import (
	"time"

	"github.com/shopspring/decimal"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase"
)

type UsuarioResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type SolicitacaoResponse struct {
	ID             string                   `json:"id"`
	OSID           int64                    `json:"osId"`
	DocumentoID    string                   `json:"documentoId"`
	Documento      *DocumentoResumoResponse `json:"documento,omitempty"`
	DocumentistaID int64                    `json:"documentistaId"`
	Documentista   *UsuarioResponse         `json:"documentista,omitempty"`
	Status         string                   `json:"status"`
	ProvaEnvio     string                   `json:"provaEnvio,omitempty"`
	Segmento       string                   `json:"segmento,omitempty"`
	LancamentoIDs  []int64                  `json:"lancamentoIds"`
	Valor          *decimal.Decimal         `json:"valor,omitempty"`
	Ativo          bool                     `json:"ativo"`
	CriadoEm       time.Time                `json:"criadoEm"`
	AtualizadoEm   time.Time                `json:"atualizadoEm"`
	RecebidoEm     *time.Time               `json:"recebidoEm,omitempty"`
	FinalizadoEm   *time.Time               `json:"finalizadoEm,omitempty"`
}

type SolicitacaoPageResponse struct {
	Items []SolicitacaoResponse `json:"items"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
	Total int                   `json:"total"`
}

type EventoResponse struct {
	ID             string    `json:"id"`
	SolicitacaoID  string    `json:"solicitacaoId"`
	Tipo           string    `json:"tipo"`
	StatusAnterior string    `json:"statusAnterior,omitempty"`
	StatusNovo     string    `json:"statusNovo,omitempty"`
	Comentario     string    `json:"comentario,omitempty"`
	ActorUsuarioID int64     `json:"actorUsuarioId"`
	ActorNome      string    `json:"actorNome,omitempty"`
	CriadoEm       time.Time `json:"criadoEm"`
}

type TotaisResponse struct {
	AguardandoRecebimento decimal.Decimal `json:"aguardandoRecebimento"`
	Recebido              decimal.Decimal `json:"recebido"`
	Finalizado            decimal.Decimal `json:"finalizado"`
}

func FromSolicitacao(s entities.Solicitacao) SolicitacaoResponse {
	lancamentos := s.LancamentoIDs
	if lancamentos == nil {
		lancamentos = []int64{}
	}
	return SolicitacaoResponse{
		ID:             s.ID,
		OSID:           s.OSID,
		DocumentoID:    s.DocumentoID,
		DocumentistaID: s.DocumentistaID,
		Status:         string(s.Status),
		ProvaEnvio:     s.ProvaEnvio,
		Segmento:       s.Segmento,
		LancamentoIDs:  lancamentos,
		Ativo:          s.Ativo,
		CriadoEm:       s.CriadoEm,
		AtualizadoEm:   s.AtualizadoEm,
		RecebidoEm:     s.RecebidoEm,
		FinalizadoEm:   s.FinalizadoEm,
	}
}

func FromEvento(e usecase.EventoComAutor) EventoResponse {
	return EventoResponse{
		ID:             e.ID,
		SolicitacaoID:  e.SolicitacaoID,
		Tipo:           string(e.Tipo),
		StatusAnterior: string(e.StatusAnterior),
		StatusNovo:     string(e.StatusNovo),
		Comentario:     e.Comentario,
		ActorUsuarioID: e.ActorUsuarioID,
		ActorNome:      e.ActorNome,
		CriadoEm:       e.CriadoEm,
	}
}

func FromEventoList(eventos []usecase.EventoComAutor) []EventoResponse {
	out := make([]EventoResponse, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, FromEvento(e))
	}
	return out
}

func FromTotais(t usecase.TotaisPorStatus) TotaisResponse {
	return TotaisResponse{
		AguardandoRecebimento: t.AguardandoRecebimento,
		Recebido:              t.Recebido,
		Finalizado:            t.Finalizado,
	}
}

func FromUsuario(u entities.Usuario) *UsuarioResponse {
	if u.ID == 0 {
		return nil
	}
	return &UsuarioResponse{ID: u.ID, Nome: u.Nome}
}
