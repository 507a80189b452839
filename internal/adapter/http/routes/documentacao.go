package routes

import (
	"inprout_docs/internal/adapter/http/handlers"
	"inprout_docs/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathDocumentos   = "/documentos"
	PathSolicitacoes = "/solicitacoes"
)

func addDocumentacaoRoutes(rg *gin.RouterGroup, documentoHandler *handlers.DocumentoHandler, solicitacaoHandler *handlers.SolicitacaoHandler) {
	gestao := middleware.RequireRoles(middleware.RoleManager, middleware.RoleAdmin)
	autenticado := middleware.RequireAuthenticated()

	documentos := rg.Group(PathDocumentos)
	{
		// Catalog reads are open to any authenticated caller; writes are
		// restricted to management.
		documentos.GET("", autenticado, documentoHandler.Listar)
		documentos.GET("/:id", autenticado, documentoHandler.Buscar)
		documentos.POST("", gestao, documentoHandler.Criar)
		documentos.PUT("/:id", gestao, documentoHandler.Alterar)
		documentos.PATCH("/:id/ativar", gestao, documentoHandler.Ativar)
		documentos.PATCH("/:id/desativar", gestao, documentoHandler.Desativar)
		documentos.PUT("/:id/precificar", gestao, documentoHandler.Precificar)
	}

	solicitacoes := rg.Group(PathSolicitacoes)
	{
		solicitacoes.GET("", autenticado, solicitacaoHandler.Listar)
		solicitacoes.GET("/:id", autenticado, solicitacaoHandler.Buscar)
		solicitacoes.GET("/:id/historico", autenticado, solicitacaoHandler.Historico)

		// Opening and receiving requests is a management action; finishing or
		// refusing belongs to the assigned documentista (admin may override).
		solicitacoes.POST("", gestao, solicitacaoHandler.Criar)
		solicitacoes.POST("/:id/receber", gestao, solicitacaoHandler.MarcarRecebido)
		solicitacoes.POST("/:id/finalizar", autenticado, solicitacaoHandler.Finalizar)
		solicitacoes.POST("/:id/recusar", autenticado, solicitacaoHandler.Recusar)
		solicitacoes.POST("/:id/comentar", autenticado, solicitacaoHandler.Comentar)
	}

	documentistas := rg.Group("/documentistas")
	{
		documentistas.GET("/:usuarioId/totais", autenticado, solicitacaoHandler.Totais)
	}
}
