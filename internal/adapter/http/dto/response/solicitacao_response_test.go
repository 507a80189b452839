package response

import (
	"encoding/json"
	"strings"
	"testing"

	"inprout_docs/internal/domain/entities"
)

func TestFromSolicitacao(t *testing.T) {
	t.Run("nil lancamentos render as empty list", func(t *testing.T) {
		out := FromSolicitacao(entities.Solicitacao{ID: "sol-1", Status: entities.StatusAguardandoRecebimento})

		body, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if !strings.Contains(string(body), `"lancamentoIds":[]`) {
			t.Fatalf("expected empty lancamentoIds list, got %s", body)
		}
	})

	t.Run("optional fields are omitted when empty", func(t *testing.T) {
		out := FromSolicitacao(entities.Solicitacao{ID: "sol-1", Status: entities.StatusAguardandoRecebimento})

		body, err := json.Marshal(out)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		for _, field := range []string{"provaEnvio", "recebidoEm", "finalizadoEm", "documento", "valor"} {
			if strings.Contains(string(body), `"`+field+`"`) {
				t.Fatalf("expected %s to be omitted, got %s", field, body)
			}
		}
	})
}

func TestResumoFromDocumento(t *testing.T) {
	if ResumoFromDocumento(entities.Documento{}) != nil {
		t.Fatalf("expected nil resumo for zero-value documento")
	}
	resumo := ResumoFromDocumento(entities.Documento{ID: "doc-1", Nome: "NDA", Ativo: true})
	if resumo == nil || resumo.Nome != "NDA" {
		t.Fatalf("unexpected resumo %+v", resumo)
	}
}
