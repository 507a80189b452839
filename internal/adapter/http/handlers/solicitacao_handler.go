package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "inprout_docs/internal/adapter/http/dto/request"
	response "inprout_docs/internal/adapter/http/dto/response"
	"inprout_docs/internal/adapter/http/middleware"
	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase"
	"inprout_docs/internal/usecase/interfaces"
	"inprout_docs/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSolicitacaoPayload = pkg.NewDomainErrorSimple("INVALID_SOLICITACAO_INPUT", "Invalid solicitacao payload", http.StatusBadRequest)
	errMissingActor              = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token ausente ou inválido", http.StatusUnauthorized)
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SolicitacaoHandler handles HTTP requests for the document request lifecycle.
// Responses are enriched with documento and documentista data resolved through
// the catalog use case and the user directory.
type SolicitacaoHandler struct {
	usecase    usecase.ISolicitacaoUseCase
	documentos usecase.IDocumentoUseCase
	usuarios   interfaces.IUsuarioLookup
}

func NewSolicitacaoHandler(uc usecase.ISolicitacaoUseCase, documentos usecase.IDocumentoUseCase, usuarios interfaces.IUsuarioLookup) *SolicitacaoHandler {
	return &SolicitacaoHandler{usecase: uc, documentos: documentos, usuarios: usuarios}
}

func (h *SolicitacaoHandler) Criar(c *gin.Context) {
	actorID, ok := middleware.CurrentUsuarioID(c)
	if !ok {
		respondError(c, errMissingActor)
		return
	}

	var payload request.CriarSolicitacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSolicitacaoPayload)
		return
	}

	s, err := h.usecase.Criar(c.Request.Context(), usecase.CriarSolicitacaoCommand{
		OSID:           payload.OSID,
		DocumentoID:    payload.DocumentoID,
		DocumentistaID: payload.DocumentistaID,
		ActorUsuarioID: actorID,
		Comentario:     payload.Comentario,
		LancamentoIDs:  payload.LancamentoIDs,
	})
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}

	c.JSON(http.StatusCreated, h.detalhe(c.Request.Context(), s, 0, false))
}

func (h *SolicitacaoHandler) MarcarRecebido(c *gin.Context) {
	actorID, ok := middleware.CurrentUsuarioID(c)
	if !ok {
		respondError(c, errMissingActor)
		return
	}

	var payload request.AcaoSolicitacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSolicitacaoPayload)
		return
	}

	s, err := h.usecase.MarcarRecebido(c.Request.Context(), c.Param("id"), usecase.AcaoSolicitacaoCommand{
		ActorUsuarioID: actorID,
		Comentario:     payload.Comentario,
		ActorAdmin:     middleware.IsAdmin(c),
	})
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}
	c.JSON(http.StatusOK, h.detalhe(c.Request.Context(), s, 0, false))
}

func (h *SolicitacaoHandler) Finalizar(c *gin.Context) {
	actorID, ok := middleware.CurrentUsuarioID(c)
	if !ok {
		respondError(c, errMissingActor)
		return
	}

	var payload request.FinalizarSolicitacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSolicitacaoPayload)
		return
	}

	s, err := h.usecase.Finalizar(c.Request.Context(), c.Param("id"), usecase.FinalizarSolicitacaoCommand{
		ActorUsuarioID: actorID,
		Comentario:     payload.Comentario,
		ProvaEnvio:     payload.ProvaEnvio,
		ActorAdmin:     middleware.IsAdmin(c),
	})
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}
	c.JSON(http.StatusOK, h.detalhe(c.Request.Context(), s, 0, false))
}

func (h *SolicitacaoHandler) Recusar(c *gin.Context) {
	actorID, ok := middleware.CurrentUsuarioID(c)
	if !ok {
		respondError(c, errMissingActor)
		return
	}

	var payload request.AcaoSolicitacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSolicitacaoPayload)
		return
	}

	s, err := h.usecase.Recusar(c.Request.Context(), c.Param("id"), usecase.AcaoSolicitacaoCommand{
		ActorUsuarioID: actorID,
		Comentario:     payload.Comentario,
		ActorAdmin:     middleware.IsAdmin(c),
	})
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}
	c.JSON(http.StatusOK, h.detalhe(c.Request.Context(), s, 0, false))
}

func (h *SolicitacaoHandler) Comentar(c *gin.Context) {
	actorID, ok := middleware.CurrentUsuarioID(c)
	if !ok {
		respondError(c, errMissingActor)
		return
	}

	var payload request.ComentarSolicitacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidSolicitacaoPayload)
		return
	}

	err := h.usecase.Comentar(c.Request.Context(), c.Param("id"), usecase.AcaoSolicitacaoCommand{
		ActorUsuarioID: actorID,
		Comentario:     payload.Comentario,
	})
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SolicitacaoHandler) Buscar(c *gin.Context) {
	s, err := h.usecase.Buscar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}

	valorUsuarioID, _ := strconv.ParseInt(c.Query("usuarioId"), 10, 64)
	incluirDocumentista := strings.EqualFold(c.Query("incluirDocumentista"), "true")

	c.JSON(http.StatusOK, h.detalhe(c.Request.Context(), s, valorUsuarioID, incluirDocumentista))
}

func (h *SolicitacaoHandler) Listar(c *gin.Context) {
	filtro, appErr := parseFiltro(c)
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	list, err := h.usecase.Listar(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}

	page, size := parsePagina(c)
	total := len(list)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	docs := map[string]entities.Documento{}
	items := make([]response.SolicitacaoResponse, 0, end-start)
	for _, s := range list[start:end] {
		item := response.FromSolicitacao(s)
		item.Documento = h.resumoDocumento(c.Request.Context(), docs, s.DocumentoID)
		items = append(items, item)
	}

	c.JSON(http.StatusOK, response.SolicitacaoPageResponse{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
	})
}

func (h *SolicitacaoHandler) Historico(c *gin.Context) {
	eventos, err := h.usecase.Historico(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEventoList(eventos))
}

func (h *SolicitacaoHandler) Totais(c *gin.Context) {
	usuarioID, err := strconv.ParseInt(c.Param("usuarioId"), 10, 64)
	if err != nil || usuarioID <= 0 {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid usuarioId", http.StatusBadRequest))
		return
	}

	totais, err := h.usecase.Totais(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, mapSolicitacaoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTotais(totais))
}

// detalhe builds the full solicitacao payload. Documento, documentista and
// valor enrichment is best-effort: a lookup failure drops the extra fields
// instead of failing the request.
func (h *SolicitacaoHandler) detalhe(ctx context.Context, s entities.Solicitacao, valorUsuarioID int64, incluirDocumentista bool) response.SolicitacaoResponse {
	out := response.FromSolicitacao(s)

	doc, err := h.documentos.Buscar(ctx, s.DocumentoID)
	if err != nil {
		log.Printf("[solicitacao][handler] documento lookup failed documento_id=%s err=%v", s.DocumentoID, err)
	} else {
		out.Documento = response.ResumoFromDocumento(doc)
		if valorUsuarioID > 0 {
			if valor, ok := doc.ValorDoDocumentista(valorUsuarioID); ok {
				out.Valor = &valor
			}
		}
	}

	if incluirDocumentista && h.usuarios != nil {
		if usuario, err := h.usuarios.BuscarUsuario(ctx, s.DocumentistaID); err != nil {
			log.Printf("[solicitacao][handler] usuario lookup failed usuario_id=%d err=%v", s.DocumentistaID, err)
		} else {
			out.Documentista = response.FromUsuario(usuario)
		}
	}
	return out
}

func (h *SolicitacaoHandler) resumoDocumento(ctx context.Context, cache map[string]entities.Documento, documentoID string) *response.DocumentoResumoResponse {
	doc, ok := cache[documentoID]
	if !ok {
		var err error
		doc, err = h.documentos.Buscar(ctx, documentoID)
		if err != nil {
			log.Printf("[solicitacao][handler] documento lookup failed documento_id=%s err=%v", documentoID, err)
			doc = entities.Documento{}
		}
		cache[documentoID] = doc
	}
	return response.ResumoFromDocumento(doc)
}

func parseFiltro(c *gin.Context) (interfaces.FiltroSolicitacao, *pkg.AppError) {
	var filtro interfaces.FiltroSolicitacao

	if raw := c.Query("osId"); raw != "" {
		osID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || osID <= 0 {
			return filtro, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid osId", http.StatusBadRequest)
		}
		filtro.OSID = osID
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := entities.ParseStatusSolicitacao(raw)
		if !ok {
			return filtro, pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status filter", http.StatusBadRequest)
		}
		filtro.Status = status
	}
	if raw := c.Query("documentistaId"); raw != "" {
		documentistaID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || documentistaID <= 0 {
			return filtro, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid documentistaId", http.StatusBadRequest)
		}
		filtro.DocumentistaID = documentistaID
	}
	filtro.Segmento = strings.TrimSpace(c.Query("segmento"))

	return filtro, nil
}

func parsePagina(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func mapSolicitacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSolicitacaoIDInvalido),
		errors.Is(err, usecase.ErrOSIDInvalido),
		errors.Is(err, usecase.ErrActorUsuarioInvalido),
		errors.Is(err, usecase.ErrLancamentoInvalido),
		errors.Is(err, usecase.ErrDocumentoIDInvalido),
		errors.Is(err, usecase.ErrDocumentistaInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComentarioInvalido):
		return pkg.NewDomainErrorSimple("COMENTARIO_INVALIDO", "Comentario must have at least 3 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProvaEnvioObrigatoria):
		return pkg.NewDomainErrorSimple("PROVA_ENVIO_OBRIGATORIA", "Prova de envio is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusNaoAguardando):
		return pkg.NewDomainErrorSimple("STATUS_INVALIDO", "Solicitacao is not awaiting receipt", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStatusNaoRecebido):
		return pkg.NewDomainErrorSimple("STATUS_INVALIDO", "Solicitacao must be RECEBIDO for this action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentoInativo):
		return pkg.NewDomainErrorSimple("DOCUMENTO_INATIVO", "Documento is inactive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentistaNaoVinculado):
		return pkg.NewDomainErrorSimple("DOCUMENTISTA_NAO_VINCULADO", "Documentista is not linked to this documento", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNaoEhDocumentista):
		return pkg.NewDomainErrorSimple("ACAO_NAO_PERMITIDA", "Only the assigned documentista can perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSolicitacaoNaoEncontrada):
		return pkg.NewDomainErrorSimple("SOLICITACAO_NAO_ENCONTRADA", "Solicitacao not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("DOCUMENTO_NAO_ENCONTRADO", "Documento not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSolicitacaoDuplicada):
		return pkg.NewDomainErrorSimple("SOLICITACAO_DUPLICADA", "A solicitacao already exists for this OS and documento", http.StatusConflict)
	case errors.Is(err, usecase.ErrSincronizacaoMonolito):
		return pkg.NewDomainError("MONOLITO_SYNC_FALHOU", "Solicitacao updated but monolito sync failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
