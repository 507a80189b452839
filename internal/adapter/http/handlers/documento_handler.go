package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "inprout_docs/internal/adapter/http/dto/request"
	response "inprout_docs/internal/adapter/http/dto/response"
	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase"
	"inprout_docs/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDocumentoPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENTO_INPUT", "Invalid documento payload", http.StatusBadRequest)

// DocumentoHandler handles HTTP requests for the documento catalog.
type DocumentoHandler struct {
	usecase usecase.IDocumentoUseCase
}

func NewDocumentoHandler(uc usecase.IDocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{usecase: uc}
}

func (h *DocumentoHandler) Criar(c *gin.Context) {
	var payload request.CriarDocumentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidDocumentoPayload)
		return
	}

	doc, err := h.usecase.Criar(c.Request.Context(), payload.NomeLimpo(), payload.DocumentistaIDs)
	if err != nil {
		respondError(c, mapDocumentoError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDocumento(doc))
}

func (h *DocumentoHandler) Alterar(c *gin.Context) {
	var payload request.AtualizarDocumentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidDocumentoPayload)
		return
	}

	doc, err := h.usecase.Alterar(c.Request.Context(), c.Param("id"), payload.NomeLimpo(), payload.DocumentistaIDs)
	if err != nil {
		respondError(c, mapDocumentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumento(doc))
}

func (h *DocumentoHandler) Ativar(c *gin.Context) {
	h.patchAtivo(c, h.usecase.Ativar)
}

func (h *DocumentoHandler) Desativar(c *gin.Context) {
	h.patchAtivo(c, h.usecase.Desativar)
}

func (h *DocumentoHandler) patchAtivo(c *gin.Context, updater func(ctx context.Context, id string) (entities.Documento, error)) {
	doc, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumento(doc))
}

func (h *DocumentoHandler) Buscar(c *gin.Context) {
	doc, err := h.usecase.Buscar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumento(doc))
}

func (h *DocumentoHandler) Listar(c *gin.Context) {
	somenteAtivos := strings.EqualFold(c.Query("somenteAtivos"), "true")

	docs, err := h.usecase.Listar(c.Request.Context(), somenteAtivos)
	if err != nil {
		respondError(c, mapDocumentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumentoList(docs))
}

func (h *DocumentoHandler) Precificar(c *gin.Context) {
	var payload request.PrecificarDocumentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidDocumentoPayload)
		return
	}

	precos := make([]entities.Precificacao, 0, len(payload.Precificacoes))
	for _, p := range payload.Precificacoes {
		precos = append(precos, entities.Precificacao{UsuarioID: p.UsuarioID, Valor: p.Valor})
	}

	doc, err := h.usecase.Precificar(c.Request.Context(), c.Param("id"), precos)
	if err != nil {
		respondError(c, mapDocumentoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDocumento(doc))
}

func mapDocumentoError(err error) *pkg.AppError {
	var dup *usecase.PrecificacaoDuplicadaError
	switch {
	case errors.Is(err, usecase.ErrDocumentoIDInvalido),
		errors.Is(err, usecase.ErrNomeDocumentoInvalido),
		errors.Is(err, usecase.ErrDocumentistaInvalido),
		errors.Is(err, usecase.ErrSemDocumentistas),
		errors.Is(err, usecase.ErrPrecificacoesVazias),
		errors.Is(err, usecase.ErrValorPrecificacaoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentoInativo):
		return pkg.NewDomainErrorSimple("DOCUMENTO_INATIVO", "Documento is inactive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentistaNaoVinculado):
		return pkg.NewDomainErrorSimple("DOCUMENTISTA_NAO_VINCULADO", "Documentista is not linked to this documento", http.StatusBadRequest)
	case errors.As(err, &dup):
		return pkg.NewDomainErrorSimple("PRECIFICACAO_DUPLICADA", dup.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrNomeDocumentoJaExiste):
		return pkg.NewDomainErrorSimple("DOCUMENTO_NOME_JA_EXISTE", "A documento with this nome already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentoNaoEncontrado):
		return pkg.NewDomainErrorSimple("DOCUMENTO_NAO_ENCONTRADO", "Documento not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
