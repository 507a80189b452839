package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDocumentoNaoEncontrado    = errors.New("documento not found")
	ErrDocumentoIDInvalido       = errors.New("invalid documento id")
	ErrNomeDocumentoInvalido     = errors.New("invalid documento nome (minimum 3 characters)")
	ErrNomeDocumentoJaExiste     = errors.New("documento nome already exists")
	ErrDocumentistaInvalido      = errors.New("invalid documentista id")
	ErrDocumentoInativo          = errors.New("documento is inactive")
	ErrSemDocumentistas          = errors.New("documento has no documentistas")
	ErrPrecificacoesVazias       = errors.New("precificacoes are required")
	ErrValorPrecificacaoInvalido = errors.New("invalid precificacao valor")
	ErrDocumentistaNaoVinculado  = errors.New("documentista not linked to this documento")
)

// PrecificacaoDuplicadaError reports every usuario repeated across the
// submitted pricing entries, not just the first one found.
type PrecificacaoDuplicadaError struct {
	UsuarioIDs []int64
}

func (e *PrecificacaoDuplicadaError) Error() string {
	return fmt.Sprintf("duplicated usuarios in precificacao: %v", e.UsuarioIDs)
}

// IDocumentoUseCase exposes the document catalog and its pricing ledger.
//
// A documento owns the set of documentistas allowed to take requests for it
// and one pricing entry per documentista. Pricing is replaced wholesale;
// removing a documentista from the set cascades its pricing entry away.

type IDocumentoUseCase interface {
	Criar(ctx context.Context, nome string, documentistaIDs []int64) (entities.Documento, error)
	Alterar(ctx context.Context, id string, nome string, documentistaIDs []int64) (entities.Documento, error)
	Ativar(ctx context.Context, id string) (entities.Documento, error)
	Desativar(ctx context.Context, id string) (entities.Documento, error)
	Buscar(ctx context.Context, id string) (entities.Documento, error)
	Listar(ctx context.Context, somenteAtivos bool) ([]entities.Documento, error)
	Precificar(ctx context.Context, id string, precificacoes []entities.Precificacao) (entities.Documento, error)
	ValorDoDocumentista(ctx context.Context, id string, usuarioID int64) (decimal.Decimal, bool, error)
}

type DocumentoUseCase struct {
	repo interfaces.IDocumentoRepository
}

var _ IDocumentoUseCase = (*DocumentoUseCase)(nil)

func NewDocumentoUseCase(repo interfaces.IDocumentoRepository) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo}
}

func (u *DocumentoUseCase) Criar(ctx context.Context, nome string, documentistaIDs []int64) (entities.Documento, error) {
	nome = strings.TrimSpace(nome)
	if len(nome) < 3 {
		return entities.Documento{}, ErrNomeDocumentoInvalido
	}
	ids, err := normalizarDocumentistas(documentistaIDs)
	if err != nil {
		return entities.Documento{}, err
	}

	now := time.Now().UTC()
	d := entities.Documento{
		ID:               uuid.NewString(),
		Nome:             nome,
		Ativo:            true,
		DocumentistasIDs: ids,
		Precificacoes:    []entities.Precificacao{},
		CriadoEm:         now,
		AtualizadoEm:     now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Documento{}, err
	}
	if created.ID == "" {
		return entities.Documento{}, ErrNomeDocumentoJaExiste
	}
	return created, nil
}

func (u *DocumentoUseCase) Alterar(ctx context.Context, id string, nome string, documentistaIDs []int64) (entities.Documento, error) {
	nome = strings.TrimSpace(nome)
	if len(nome) < 3 {
		return entities.Documento{}, ErrNomeDocumentoInvalido
	}
	ids, err := normalizarDocumentistas(documentistaIDs)
	if err != nil {
		return entities.Documento{}, err
	}

	d, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return entities.Documento{}, err
	}

	nomeAnterior := d.Nome
	d.Nome = nome
	d.DocumentistasIDs = ids

	// Documentistas removed from the set lose their pricing entry.
	kept := d.Precificacoes[:0]
	for _, p := range d.Precificacoes {
		if d.TemDocumentista(p.UsuarioID) {
			kept = append(kept, p)
		}
	}
	d.Precificacoes = kept
	d.AtualizadoEm = time.Now().UTC()

	updated, err := u.repo.Update(ctx, d, nomeAnterior)
	if err != nil {
		return entities.Documento{}, err
	}
	if updated.ID == "" {
		return entities.Documento{}, ErrNomeDocumentoJaExiste
	}
	return updated, nil
}

func (u *DocumentoUseCase) Ativar(ctx context.Context, id string) (entities.Documento, error) {
	return u.definirAtivo(ctx, id, true)
}

func (u *DocumentoUseCase) Desativar(ctx context.Context, id string) (entities.Documento, error) {
	return u.definirAtivo(ctx, id, false)
}

func (u *DocumentoUseCase) definirAtivo(ctx context.Context, id string, ativo bool) (entities.Documento, error) {
	d, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return entities.Documento{}, err
	}
	if d.Ativo == ativo {
		// Idempotent; nothing to persist.
		return d, nil
	}
	d.Ativo = ativo
	d.AtualizadoEm = time.Now().UTC()

	updated, err := u.repo.Update(ctx, d, d.Nome)
	if err != nil {
		return entities.Documento{}, err
	}
	if updated.ID == "" {
		return entities.Documento{}, ErrDocumentoNaoEncontrado
	}
	return updated, nil
}

func (u *DocumentoUseCase) Buscar(ctx context.Context, id string) (entities.Documento, error) {
	return u.buscarOuFalhar(ctx, id)
}

func (u *DocumentoUseCase) Listar(ctx context.Context, somenteAtivos bool) ([]entities.Documento, error) {
	docs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !somenteAtivos {
		return docs, nil
	}
	ativos := make([]entities.Documento, 0, len(docs))
	for _, d := range docs {
		if d.Ativo {
			ativos = append(ativos, d)
		}
	}
	return ativos, nil
}

func (u *DocumentoUseCase) Precificar(ctx context.Context, id string, precificacoes []entities.Precificacao) (entities.Documento, error) {
	d, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return entities.Documento{}, err
	}
	if !d.Ativo {
		return entities.Documento{}, ErrDocumentoInativo
	}
	if len(d.DocumentistasIDs) == 0 {
		return entities.Documento{}, ErrSemDocumentistas
	}
	if len(precificacoes) == 0 {
		return entities.Documento{}, ErrPrecificacoesVazias
	}

	vistos := map[int64]bool{}
	var repetidos []int64
	for _, p := range precificacoes {
		if p.UsuarioID <= 0 {
			return entities.Documento{}, ErrDocumentistaInvalido
		}
		if !d.TemDocumentista(p.UsuarioID) {
			return entities.Documento{}, fmt.Errorf("%w: usuario %d", ErrDocumentistaNaoVinculado, p.UsuarioID)
		}
		if p.Valor.LessThanOrEqual(decimal.Zero) {
			return entities.Documento{}, fmt.Errorf("%w: usuario %d", ErrValorPrecificacaoInvalido, p.UsuarioID)
		}
		if vistos[p.UsuarioID] {
			repetidos = append(repetidos, p.UsuarioID)
		}
		vistos[p.UsuarioID] = true
	}
	if len(repetidos) > 0 {
		sort.Slice(repetidos, func(i, j int) bool { return repetidos[i] < repetidos[j] })
		return entities.Documento{}, &PrecificacaoDuplicadaError{UsuarioIDs: repetidos}
	}

	// Wholesale replacement; partial pricing updates do not exist.
	d.Precificacoes = append([]entities.Precificacao(nil), precificacoes...)
	d.AtualizadoEm = time.Now().UTC()

	updated, err := u.repo.Update(ctx, d, d.Nome)
	if err != nil {
		return entities.Documento{}, err
	}
	if updated.ID == "" {
		return entities.Documento{}, ErrDocumentoNaoEncontrado
	}
	return updated, nil
}

func (u *DocumentoUseCase) ValorDoDocumentista(ctx context.Context, id string, usuarioID int64) (decimal.Decimal, bool, error) {
	if usuarioID <= 0 {
		return decimal.Decimal{}, false, ErrDocumentistaInvalido
	}
	d, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	valor, ok := d.ValorDoDocumentista(usuarioID)
	return valor, ok, nil
}

func (u *DocumentoUseCase) buscarOuFalhar(ctx context.Context, id string) (entities.Documento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Documento{}, ErrDocumentoIDInvalido
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Documento{}, err
	}
	if d.ID == "" {
		return entities.Documento{}, ErrDocumentoNaoEncontrado
	}
	return d, nil
}

func normalizarDocumentistas(ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	seen := map[int64]bool{}
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrDocumentistaInvalido
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
