package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSolicitacaoNaoEncontrada = errors.New("solicitacao not found")
	ErrSolicitacaoIDInvalido    = errors.New("invalid solicitacao id")
	ErrOSIDInvalido             = errors.New("invalid os id")
	ErrActorUsuarioInvalido     = errors.New("invalid actor usuario id")
	ErrComentarioInvalido       = errors.New("comentario is required (minimum 3 characters)")
	ErrLancamentoInvalido       = errors.New("invalid lancamento id")
	ErrSolicitacaoDuplicada     = errors.New("solicitacao already exists for this os and documento")
	ErrStatusNaoAguardando      = errors.New("solicitacao is not awaiting receipt")
	ErrStatusNaoRecebido        = errors.New("solicitacao must be RECEBIDO for this action")
	ErrProvaEnvioObrigatoria    = errors.New("prova de envio is required to finalizar")
	ErrNaoEhDocumentista        = errors.New("only the assigned documentista can perform this action")
	ErrSincronizacaoMonolito    = errors.New("monolito sync failed")
)

// SyncPolicy decides what happens when the post-commit monolito sync fails.
// The lifecycle transition is committed either way; the policy only controls
// whether the caller hears about the sync failure.
type SyncPolicy string

const (
	SyncPolicyLog      SyncPolicy = "log"
	SyncPolicyPropagar SyncPolicy = "propagar"
)

// Monolito wire values for the documentation state of lancamentos.
const (
	documentacaoPendente  = "NOK"
	documentacaoConcluida = "OK"

	situacaoAguardando = "Aguardando documentação"
	situacaoFinalizado = "Finalizado"

	prazoDocumentacaoDias = 2
)

type CriarSolicitacaoCommand struct {
	OSID           int64
	DocumentoID    string
	DocumentistaID int64
	ActorUsuarioID int64
	Comentario     string
	LancamentoIDs  []int64
}

// AcaoSolicitacaoCommand carries the common lifecycle action payload.
// ActorAdmin is set by the transport layer when the caller holds ROLE_ADMIN
// and may act in place of the assigned documentista.
type AcaoSolicitacaoCommand struct {
	ActorUsuarioID int64
	Comentario     string
	ActorAdmin     bool
}

type FinalizarSolicitacaoCommand struct {
	ActorUsuarioID int64
	Comentario     string
	ProvaEnvio     string
	ActorAdmin     bool
}

// EventoComAutor is one audit entry enriched with the actor display name
// resolved through the user directory (best-effort; empty when unresolved).
type EventoComAutor struct {
	entities.SolicitacaoEvento
	ActorNome string
}

// TotaisPorStatus aggregates the priced value of a documentista's requests in
// each lifecycle bucket. Unpriced requests contribute zero.
type TotaisPorStatus struct {
	AguardandoRecebimento decimal.Decimal `json:"aguardandoRecebimento"`
	Recebido              decimal.Decimal `json:"recebido"`
	Finalizado            decimal.Decimal `json:"finalizado"`
}

// ISolicitacaoUseCase is the document request lifecycle engine.
//
// Every mutation commits the status change and its audit event in one unit of
// work; the monolito sync intent is dispatched only after that commit and is
// never able to roll it back.

type ISolicitacaoUseCase interface {
	Criar(ctx context.Context, cmd CriarSolicitacaoCommand) (entities.Solicitacao, error)
	MarcarRecebido(ctx context.Context, id string, cmd AcaoSolicitacaoCommand) (entities.Solicitacao, error)
	Finalizar(ctx context.Context, id string, cmd FinalizarSolicitacaoCommand) (entities.Solicitacao, error)
	Recusar(ctx context.Context, id string, cmd AcaoSolicitacaoCommand) (entities.Solicitacao, error)
	Comentar(ctx context.Context, id string, cmd AcaoSolicitacaoCommand) error
	Buscar(ctx context.Context, id string) (entities.Solicitacao, error)
	Listar(ctx context.Context, filtro interfaces.FiltroSolicitacao) ([]entities.Solicitacao, error)
	Historico(ctx context.Context, id string) ([]EventoComAutor, error)
	Totais(ctx context.Context, usuarioID int64) (TotaisPorStatus, error)
}

type SolicitacaoUseCase struct {
	repo          interfaces.ISolicitacaoRepository
	eventoRepo    interfaces.IEventoRepository
	documentoRepo interfaces.IDocumentoRepository
	monolito      interfaces.IMonolitoGateway
	usuarios      interfaces.IUsuarioLookup
	syncPolicy    SyncPolicy
}

var _ ISolicitacaoUseCase = (*SolicitacaoUseCase)(nil)

func NewSolicitacaoUseCase(
	repo interfaces.ISolicitacaoRepository,
	eventoRepo interfaces.IEventoRepository,
	documentoRepo interfaces.IDocumentoRepository,
	monolito interfaces.IMonolitoGateway,
	usuarios interfaces.IUsuarioLookup,
	syncPolicy SyncPolicy,
) *SolicitacaoUseCase {
	if syncPolicy == "" {
		syncPolicy = SyncPolicyLog
	}
	return &SolicitacaoUseCase{
		repo:          repo,
		eventoRepo:    eventoRepo,
		documentoRepo: documentoRepo,
		monolito:      monolito,
		usuarios:      usuarios,
		syncPolicy:    syncPolicy,
	}
}

func (u *SolicitacaoUseCase) Criar(ctx context.Context, cmd CriarSolicitacaoCommand) (entities.Solicitacao, error) {
	if err := validarComentario(cmd.Comentario); err != nil {
		return entities.Solicitacao{}, err
	}
	if cmd.OSID <= 0 {
		return entities.Solicitacao{}, ErrOSIDInvalido
	}
	documentoID := strings.TrimSpace(cmd.DocumentoID)
	if documentoID == "" {
		return entities.Solicitacao{}, ErrDocumentoIDInvalido
	}
	if cmd.DocumentistaID <= 0 {
		return entities.Solicitacao{}, ErrDocumentistaInvalido
	}
	if cmd.ActorUsuarioID <= 0 {
		return entities.Solicitacao{}, ErrActorUsuarioInvalido
	}
	lancamentos, err := normalizarLancamentos(cmd.LancamentoIDs)
	if err != nil {
		return entities.Solicitacao{}, err
	}

	doc, err := u.documentoRepo.GetByID(ctx, documentoID)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if doc.ID == "" {
		return entities.Solicitacao{}, ErrDocumentoNaoEncontrado
	}
	if !doc.Ativo {
		return entities.Solicitacao{}, ErrDocumentoInativo
	}
	if !doc.TemDocumentista(cmd.DocumentistaID) {
		return entities.Solicitacao{}, fmt.Errorf("%w: usuario %d", ErrDocumentistaNaoVinculado, cmd.DocumentistaID)
	}

	now := time.Now().UTC()
	s := entities.Solicitacao{
		ID:             uuid.NewString(),
		OSID:           cmd.OSID,
		DocumentoID:    doc.ID,
		DocumentistaID: cmd.DocumentistaID,
		Status:         entities.StatusAguardandoRecebimento,
		Ativo:          true,
		Segmento:       u.segmentoDaOS(ctx, cmd.OSID),
		LancamentoIDs:  lancamentos,
		CriadoEm:       now,
		AtualizadoEm:   now,
	}
	ev := u.novoEvento(s.ID, entities.EventoCriada, "", s.Status, cmd.Comentario, cmd.ActorUsuarioID)

	salvo, err := u.repo.CreateWithEvento(ctx, s, ev)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if salvo.ID == "" {
		return entities.Solicitacao{}, ErrSolicitacaoDuplicada
	}

	syncErr := u.sincronizarLancamentos(ctx, salvo.ID, entities.AtualizarLancamentos{
		LancamentoIDs: salvo.LancamentoIDs,
		Documentacao:  documentacaoPendente,
		Plano:         now.AddDate(0, 0, prazoDocumentacaoDias),
		Situacao:      situacaoAguardando,
	})
	return salvo, syncErr
}

func (u *SolicitacaoUseCase) MarcarRecebido(ctx context.Context, id string, cmd AcaoSolicitacaoCommand) (entities.Solicitacao, error) {
	if err := validarAcao(cmd.ActorUsuarioID, cmd.Comentario); err != nil {
		return entities.Solicitacao{}, err
	}
	s, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if s.Status != entities.StatusAguardandoRecebimento {
		return entities.Solicitacao{}, ErrStatusNaoAguardando
	}

	anterior := s.Status
	now := time.Now().UTC()
	s.Status = entities.StatusRecebido
	s.RecebidoEm = &now
	s.AtualizadoEm = now

	ev := u.novoEvento(s.ID, entities.EventoMarcadoRecebido, anterior, s.Status, cmd.Comentario, cmd.ActorUsuarioID)
	salvo, err := u.repo.UpdateWithEvento(ctx, s, anterior, ev)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if salvo.ID == "" {
		// Lost a race: the row left AGUARDANDO_RECEBIMENTO between the read
		// and the conditional write.
		return entities.Solicitacao{}, ErrStatusNaoAguardando
	}
	return salvo, nil
}

func (u *SolicitacaoUseCase) Finalizar(ctx context.Context, id string, cmd FinalizarSolicitacaoCommand) (entities.Solicitacao, error) {
	if err := validarAcao(cmd.ActorUsuarioID, cmd.Comentario); err != nil {
		return entities.Solicitacao{}, err
	}
	prova := strings.TrimSpace(cmd.ProvaEnvio)
	if prova == "" {
		return entities.Solicitacao{}, ErrProvaEnvioObrigatoria
	}

	s, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if s.Status != entities.StatusRecebido {
		return entities.Solicitacao{}, ErrStatusNaoRecebido
	}
	if s.DocumentistaID != cmd.ActorUsuarioID && !cmd.ActorAdmin {
		return entities.Solicitacao{}, ErrNaoEhDocumentista
	}

	anterior := s.Status
	now := time.Now().UTC()
	s.Status = entities.StatusFinalizado
	s.ProvaEnvio = prova
	s.FinalizadoEm = &now
	s.AtualizadoEm = now

	ev := u.novoEvento(s.ID, entities.EventoFinalizado, anterior, s.Status, cmd.Comentario, cmd.ActorUsuarioID)
	salvo, err := u.repo.UpdateWithEvento(ctx, s, anterior, ev)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if salvo.ID == "" {
		return entities.Solicitacao{}, ErrStatusNaoRecebido
	}

	var syncErr error
	if len(salvo.LancamentoIDs) > 0 {
		syncErr = u.sincronizarLancamentos(ctx, salvo.ID, entities.AtualizarLancamentos{
			LancamentoIDs: salvo.LancamentoIDs,
			Documentacao:  documentacaoConcluida,
			Plano:         now,
			Situacao:      situacaoFinalizado,
		})
	}
	return salvo, syncErr
}

func (u *SolicitacaoUseCase) Recusar(ctx context.Context, id string, cmd AcaoSolicitacaoCommand) (entities.Solicitacao, error) {
	if err := validarAcao(cmd.ActorUsuarioID, cmd.Comentario); err != nil {
		return entities.Solicitacao{}, err
	}
	s, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if s.Status != entities.StatusRecebido {
		return entities.Solicitacao{}, ErrStatusNaoRecebido
	}
	if s.DocumentistaID != cmd.ActorUsuarioID && !cmd.ActorAdmin {
		return entities.Solicitacao{}, ErrNaoEhDocumentista
	}

	anterior := s.Status
	now := time.Now().UTC()
	s.Status = entities.StatusAguardandoRecebimento
	s.ProvaEnvio = ""
	s.RecebidoEm = nil
	s.FinalizadoEm = nil
	s.AtualizadoEm = now

	ev := u.novoEvento(s.ID, entities.EventoRecusado, anterior, s.Status, cmd.Comentario, cmd.ActorUsuarioID)
	salvo, err := u.repo.UpdateWithEvento(ctx, s, anterior, ev)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if salvo.ID == "" {
		return entities.Solicitacao{}, ErrStatusNaoRecebido
	}
	return salvo, nil
}

func (u *SolicitacaoUseCase) Comentar(ctx context.Context, id string, cmd AcaoSolicitacaoCommand) error {
	if err := validarAcao(cmd.ActorUsuarioID, cmd.Comentario); err != nil {
		return err
	}
	s, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return err
	}

	// Pure audit entry; status and timestamps stay untouched.
	ev := u.novoEvento(s.ID, entities.EventoComentario, s.Status, s.Status, cmd.Comentario, cmd.ActorUsuarioID)
	_, err = u.eventoRepo.Append(ctx, ev)
	return err
}

func (u *SolicitacaoUseCase) Buscar(ctx context.Context, id string) (entities.Solicitacao, error) {
	return u.buscarOuFalhar(ctx, id)
}

func (u *SolicitacaoUseCase) Listar(ctx context.Context, filtro interfaces.FiltroSolicitacao) ([]entities.Solicitacao, error) {
	list, err := u.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CriadoEm.After(list[j].CriadoEm) })
	return list, nil
}

func (u *SolicitacaoUseCase) Historico(ctx context.Context, id string) ([]EventoComAutor, error) {
	s, err := u.buscarOuFalhar(ctx, id)
	if err != nil {
		return nil, err
	}
	eventos, err := u.eventoRepo.ListBySolicitacaoID(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	nomes := map[int64]string{}
	out := make([]EventoComAutor, 0, len(eventos))
	for _, ev := range eventos {
		item := EventoComAutor{SolicitacaoEvento: ev}
		if ev.ActorUsuarioID > 0 && u.usuarios != nil {
			nome, ok := nomes[ev.ActorUsuarioID]
			if !ok {
				if usuario, err := u.usuarios.BuscarUsuario(ctx, ev.ActorUsuarioID); err != nil {
					log.Printf("[solicitacao][usecase] usuario lookup failed usuario_id=%d err=%v", ev.ActorUsuarioID, err)
				} else {
					nome = usuario.Nome
				}
				nomes[ev.ActorUsuarioID] = nome
			}
			item.ActorNome = nome
		}
		out = append(out, item)
	}
	return out, nil
}

func (u *SolicitacaoUseCase) Totais(ctx context.Context, usuarioID int64) (TotaisPorStatus, error) {
	if usuarioID <= 0 {
		return TotaisPorStatus{}, ErrActorUsuarioInvalido
	}

	list, err := u.repo.List(ctx, interfaces.FiltroSolicitacao{DocumentistaID: usuarioID})
	if err != nil {
		return TotaisPorStatus{}, err
	}

	totais := TotaisPorStatus{
		AguardandoRecebimento: decimal.Zero,
		Recebido:              decimal.Zero,
		Finalizado:            decimal.Zero,
	}
	docs := map[string]entities.Documento{}

	for _, s := range list {
		doc, ok := docs[s.DocumentoID]
		if !ok {
			doc, err = u.documentoRepo.GetByID(ctx, s.DocumentoID)
			if err != nil {
				return TotaisPorStatus{}, err
			}
			docs[s.DocumentoID] = doc
		}
		valor, priced := doc.ValorDoDocumentista(usuarioID)
		if !priced {
			continue
		}

		switch s.Status {
		case entities.StatusAguardandoRecebimento:
			totais.AguardandoRecebimento = totais.AguardandoRecebimento.Add(valor)
		case entities.StatusRecebido:
			totais.Recebido = totais.Recebido.Add(valor)
		case entities.StatusFinalizado, entities.StatusFinalizadoForaPrazo:
			totais.Finalizado = totais.Finalizado.Add(valor)
		}
	}
	return totais, nil
}

// sincronizarLancamentos dispatches the post-commit sync intent. The
// transition it refers to is already durable; under SyncPolicyLog a failure
// is only logged, under SyncPolicyPropagar it is returned to the caller.
func (u *SolicitacaoUseCase) sincronizarLancamentos(ctx context.Context, solicitacaoID string, req entities.AtualizarLancamentos) error {
	if u.monolito == nil {
		log.Printf("[solicitacao][usecase] monolito gateway not configured, skipping sync solicitacao_id=%s", solicitacaoID)
		return nil
	}
	if err := u.monolito.AtualizarStatusLancamentos(ctx, req); err != nil {
		log.Printf("[solicitacao][usecase] monolito sync failed solicitacao_id=%s documentacao=%s err=%v",
			solicitacaoID, req.Documentacao, err)
		if u.syncPolicy == SyncPolicyPropagar {
			return fmt.Errorf("%w: %v", ErrSincronizacaoMonolito, err)
		}
	}
	return nil
}

func (u *SolicitacaoUseCase) segmentoDaOS(ctx context.Context, osID int64) string {
	if u.monolito == nil {
		return ""
	}
	info, err := u.monolito.BuscarInfoOS(ctx, osID)
	if err != nil {
		log.Printf("[solicitacao][usecase] os info lookup failed os_id=%d err=%v", osID, err)
		return ""
	}
	return info.Segmento
}

func (u *SolicitacaoUseCase) novoEvento(solicitacaoID string, tipo entities.TipoEvento, anterior, novo entities.StatusSolicitacao, comentario string, actorUsuarioID int64) entities.SolicitacaoEvento {
	return entities.SolicitacaoEvento{
		ID:             uuid.NewString(),
		SolicitacaoID:  solicitacaoID,
		Tipo:           tipo,
		StatusAnterior: anterior,
		StatusNovo:     novo,
		Comentario:     strings.TrimSpace(comentario),
		ActorUsuarioID: actorUsuarioID,
		CriadoEm:       time.Now().UTC(),
	}
}

func (u *SolicitacaoUseCase) buscarOuFalhar(ctx context.Context, id string) (entities.Solicitacao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Solicitacao{}, ErrSolicitacaoIDInvalido
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if s.ID == "" {
		return entities.Solicitacao{}, ErrSolicitacaoNaoEncontrada
	}
	return s, nil
}

func validarComentario(comentario string) error {
	if len(strings.TrimSpace(comentario)) < 3 {
		return ErrComentarioInvalido
	}
	return nil
}

func validarAcao(actorUsuarioID int64, comentario string) error {
	if actorUsuarioID <= 0 {
		return ErrActorUsuarioInvalido
	}
	return validarComentario(comentario)
}

func normalizarLancamentos(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]int64, 0, len(ids))
	seen := map[int64]bool{}
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrLancamentoInvalido
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
