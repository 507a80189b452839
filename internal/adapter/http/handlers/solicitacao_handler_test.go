package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inprout_docs/internal/adapter/http/handlers/mocks"
	"inprout_docs/internal/adapter/http/middleware"
	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase"
	"inprout_docs/internal/usecase/interfaces"
	mock_interfaces "inprout_docs/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func testRouter(h *SolicitacaoHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.JWTAuth(base64.StdEncoding.EncodeToString(testSecret)))

	v1 := r.Group("/v1")
	v1.POST("/solicitacoes", middleware.RequireRoles(middleware.RoleManager, middleware.RoleAdmin), h.Criar)
	v1.GET("/solicitacoes", h.Listar)
	v1.GET("/solicitacoes/:id", h.Buscar)
	v1.POST("/solicitacoes/:id/receber", middleware.RequireRoles(middleware.RoleManager, middleware.RoleAdmin), h.MarcarRecebido)
	v1.POST("/solicitacoes/:id/finalizar", middleware.RequireAuthenticated(), h.Finalizar)
	v1.POST("/solicitacoes/:id/recusar", middleware.RequireAuthenticated(), h.Recusar)
	v1.POST("/solicitacoes/:id/comentar", middleware.RequireAuthenticated(), h.Comentar)
	v1.GET("/documentistas/:usuarioId/totais", middleware.RequireAuthenticated(), h.Totais)
	return r
}

func bearerFor(t *testing.T, usuarioID string, roles ...string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": usuarioID}
	if len(roles) > 0 {
		anyRoles := make([]any, 0, len(roles))
		for _, r := range roles {
			anyRoles = append(anyRoles, r)
		}
		claims["roles"] = anyRoles
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return "Bearer " + signed
}

func newSolicitacaoHandler(t *testing.T) (*SolicitacaoHandler, *mocks.MockISolicitacaoUseCase, *mocks.MockIDocumentoUseCase, *mock_interfaces.MockIUsuarioLookup) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockISolicitacaoUseCase(ctrl)
	docs := mocks.NewMockIDocumentoUseCase(ctrl)
	usuarios := mock_interfaces.NewMockIUsuarioLookup(ctrl)
	return NewSolicitacaoHandler(uc, docs, usuarios), uc, docs, usuarios
}

func TestSolicitacaoHandler_Criar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"osId":100,"documentoId":"doc-1","documentistaId":7,"comentario":"abrindo","lancamentoIds":[1,2]}`

	t.Run("missing token", func(t *testing.T) {
		h, _, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing role", func(t *testing.T) {
		h, _, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, "3", "DOCUMENTISTA"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("duplicate pair", func(t *testing.T) {
		h, uc, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(entities.Solicitacao{}, usecase.ErrSolicitacaoDuplicada)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, "3", "MANAGER"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created with actor from token", func(t *testing.T) {
		h, uc, docs, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CriarSolicitacaoCommand) (entities.Solicitacao, error) {
				if cmd.ActorUsuarioID != 3 {
					t.Fatalf("expected actor from token subject, got %d", cmd.ActorUsuarioID)
				}
				return entities.Solicitacao{
					ID:             "sol-1",
					OSID:           cmd.OSID,
					DocumentoID:    cmd.DocumentoID,
					DocumentistaID: cmd.DocumentistaID,
					Status:         entities.StatusAguardandoRecebimento,
					Ativo:          true,
					LancamentoIDs:  cmd.LancamentoIDs,
				}, nil
			})
		docs.EXPECT().Buscar(gomock.Any(), "doc-1").Return(entities.Documento{ID: "doc-1", Nome: "NDA", Ativo: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, "3", "MANAGER"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["status"] != "AGUARDANDO_RECEBIMENTO" {
			t.Fatalf("unexpected status %v", body["status"])
		}
		doc, _ := body["documento"].(map[string]any)
		if doc == nil || doc["nome"] != "NDA" {
			t.Fatalf("expected documento resumo, got %v", body["documento"])
		}
	})
}

func TestSolicitacaoHandler_Finalizar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"comentario":"enviado","provaEnvio":"AR-123"}`

	t.Run("forbidden for non-assignee", func(t *testing.T) {
		h, uc, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		uc.EXPECT().Finalizar(gomock.Any(), "sol-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cmd usecase.FinalizarSolicitacaoCommand) (entities.Solicitacao, error) {
				if cmd.ActorAdmin {
					t.Fatalf("caller without ROLE_ADMIN must not be admin")
				}
				return entities.Solicitacao{}, usecase.ErrNaoEhDocumentista
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes/sol-1/finalizar", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, "99", "DOCUMENTISTA"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin override reaches usecase", func(t *testing.T) {
		h, uc, docs, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		uc.EXPECT().Finalizar(gomock.Any(), "sol-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cmd usecase.FinalizarSolicitacaoCommand) (entities.Solicitacao, error) {
				if !cmd.ActorAdmin {
					t.Fatalf("expected ActorAdmin for ROLE_ADMIN caller")
				}
				s := entities.Solicitacao{ID: "sol-1", DocumentoID: "doc-1", Status: entities.StatusFinalizado, Ativo: true}
				return s, nil
			})
		docs.EXPECT().Buscar(gomock.Any(), "doc-1").Return(entities.Documento{ID: "doc-1", Nome: "NDA", Ativo: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes/sol-1/finalizar", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, "99", "ADMIN"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sync failure surfaces as bad gateway", func(t *testing.T) {
		h, uc, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		uc.EXPECT().Finalizar(gomock.Any(), "sol-1", gomock.Any()).
			Return(entities.Solicitacao{ID: "sol-1", Status: entities.StatusFinalizado}, usecase.ErrSincronizacaoMonolito)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes/sol-1/finalizar", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, "7"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestSolicitacaoHandler_Comentar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, uc, _, _ := newSolicitacaoHandler(t)
	r := testRouter(h)

	uc.EXPECT().Comentar(gomock.Any(), "sol-1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, cmd usecase.AcaoSolicitacaoCommand) error {
			if cmd.ActorUsuarioID != 7 || cmd.Comentario != "tudo certo" {
				t.Fatalf("unexpected cmd %+v", cmd)
			}
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/solicitacoes/sol-1/comentar", bytes.NewBufferString(`{"comentario":"tudo certo"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, "7"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestSolicitacaoHandler_Listar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status filter", func(t *testing.T) {
		h, _, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/solicitacoes?status=WHATEVER", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("paginates and enriches documento", func(t *testing.T) {
		h, uc, docs, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		list := make([]entities.Solicitacao, 0, 3)
		for _, id := range []string{"sol-1", "sol-2", "sol-3"} {
			list = append(list, entities.Solicitacao{ID: id, OSID: 100, DocumentoID: "doc-1", Status: entities.StatusRecebido, Ativo: true})
		}
		uc.EXPECT().Listar(gomock.Any(), interfaces.FiltroSolicitacao{OSID: 100, Status: entities.StatusRecebido}).Return(list, nil)
		// One lookup serves every row of the page.
		docs.EXPECT().Buscar(gomock.Any(), "doc-1").Return(entities.Documento{ID: "doc-1", Nome: "NDA", Ativo: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/solicitacoes?osId=100&status=RECEBIDO&page=0&size=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items []map[string]any `json:"items"`
			Page  int              `json:"page"`
			Size  int              `json:"size"`
			Total int              `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Total != 3 || len(body.Items) != 2 || body.Size != 2 {
			t.Fatalf("unexpected page %+v", body)
		}
	})
}

func TestSolicitacaoHandler_Totais(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid usuario id", func(t *testing.T) {
		h, _, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/documentistas/abc/totais", nil)
		req.Header.Set("Authorization", bearerFor(t, "7"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, uc, _, _ := newSolicitacaoHandler(t)
		r := testRouter(h)

		uc.EXPECT().Totais(gomock.Any(), int64(7)).Return(usecase.TotaisPorStatus{
			AguardandoRecebimento: decimal.RequireFromString("150.00"),
			Recebido:              decimal.Zero,
			Finalizado:            decimal.RequireFromString("300.00"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/documentistas/7/totais", nil)
		req.Header.Set("Authorization", bearerFor(t, "7"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["aguardandoRecebimento"] != "150" && body["aguardandoRecebimento"] != "150.00" {
			t.Fatalf("unexpected aguardandoRecebimento %q", body["aguardandoRecebimento"])
		}
		if body["finalizado"] != "300" && body["finalizado"] != "300.00" {
			t.Fatalf("unexpected finalizado %q", body["finalizado"])
		}
	})
}
