package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"inprout_docs/internal/domain/entities"
	mock_interfaces "inprout_docs/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func docFixture() entities.Documento {
	now := time.Now().UTC()
	return entities.Documento{
		ID:               "doc-1",
		Nome:             "NDA",
		Ativo:            true,
		DocumentistasIDs: []int64{7, 9},
		Precificacoes: []entities.Precificacao{
			{UsuarioID: 7, Valor: decimal.RequireFromString("150.00")},
		},
		CriadoEm:     now,
		AtualizadoEm: now,
	}
}

func TestDocumentoUseCase_Criar(t *testing.T) {
	t.Run("invalid nome", func(t *testing.T) {
		uc := NewDocumentoUseCase(nil)
		_, err := uc.Criar(context.Background(), "  ab ", []int64{7})
		if !errors.Is(err, ErrNomeDocumentoInvalido) {
			t.Fatalf("expected ErrNomeDocumentoInvalido, got %v", err)
		}
	})

	t.Run("invalid documentista", func(t *testing.T) {
		uc := NewDocumentoUseCase(nil)
		_, err := uc.Criar(context.Background(), "NDA", []int64{7, 0})
		if !errors.Is(err, ErrDocumentistaInvalido) {
			t.Fatalf("expected ErrDocumentistaInvalido, got %v", err)
		}
	})

	t.Run("nome conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Documento{}, nil)

		_, err := uc.Criar(context.Background(), "NDA", []int64{7})
		if !errors.Is(err, ErrNomeDocumentoJaExiste) {
			t.Fatalf("expected ErrNomeDocumentoJaExiste, got %v", err)
		}
	})

	t.Run("success dedupes and sorts documentistas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Documento) (entities.Documento, error) {
				if d.ID == "" {
					t.Fatalf("expected generated id")
				}
				if !d.Ativo {
					t.Fatalf("expected new documento to be ativo")
				}
				if len(d.DocumentistasIDs) != 2 || d.DocumentistasIDs[0] != 7 || d.DocumentistasIDs[1] != 9 {
					t.Fatalf("expected deduped sorted documentistas, got %v", d.DocumentistasIDs)
				}
				return d, nil
			})

		doc, err := uc.Criar(context.Background(), "  NDA ", []int64{9, 7, 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Nome != "NDA" {
			t.Fatalf("expected trimmed nome, got %q", doc.Nome)
		}
	})
}

func TestDocumentoUseCase_Alterar(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Documento{}, nil)

		_, err := uc.Alterar(context.Background(), "missing", "NDA v2", []int64{7})
		if !errors.Is(err, ErrDocumentoNaoEncontrado) {
			t.Fatalf("expected ErrDocumentoNaoEncontrado, got %v", err)
		}
	})

	t.Run("removing documentista cascades pricing away", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "NDA").DoAndReturn(
			func(_ context.Context, d entities.Documento, _ string) (entities.Documento, error) {
				if len(d.Precificacoes) != 0 {
					t.Fatalf("expected pricing of removed documentista to be dropped, got %v", d.Precificacoes)
				}
				return d, nil
			})

		// Usuario 7 held the only pricing entry and leaves the set.
		doc, err := uc.Alterar(context.Background(), "doc-1", "NDA", []int64{9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.DocumentistasIDs) != 1 || doc.DocumentistasIDs[0] != 9 {
			t.Fatalf("expected documentistas [9], got %v", doc.DocumentistasIDs)
		}
	})

	t.Run("rename conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "NDA").Return(entities.Documento{}, nil)

		_, err := uc.Alterar(context.Background(), "doc-1", "Contrato", []int64{7, 9})
		if !errors.Is(err, ErrNomeDocumentoJaExiste) {
			t.Fatalf("expected ErrNomeDocumentoJaExiste, got %v", err)
		}
	})
}

func TestDocumentoUseCase_AtivarDesativar(t *testing.T) {
	t.Run("desativar persists the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "NDA").DoAndReturn(
			func(_ context.Context, d entities.Documento, _ string) (entities.Documento, error) {
				if d.Ativo {
					t.Fatalf("expected ativo=false")
				}
				return d, nil
			})

		doc, err := uc.Desativar(context.Background(), "doc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Ativo {
			t.Fatalf("expected returned documento inactive")
		}
	})

	t.Run("ativar is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		// Already ativo: no write expected.
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)

		doc, err := uc.Ativar(context.Background(), "doc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !doc.Ativo {
			t.Fatalf("expected documento ativo")
		}
	})
}

func TestDocumentoUseCase_Listar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
	uc := NewDocumentoUseCase(repo)

	ativo := docFixture()
	inativo := docFixture()
	inativo.ID = "doc-2"
	inativo.Nome = "Contrato"
	inativo.Ativo = false

	repo.EXPECT().List(gomock.Any()).Return([]entities.Documento{ativo, inativo}, nil).Times(2)

	todos, err := uc.Listar(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 documentos, got %d", len(todos))
	}

	ativos, err := uc.Listar(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ativos) != 1 || ativos[0].ID != "doc-1" {
		t.Fatalf("expected only doc-1, got %v", ativos)
	}
}

func TestDocumentoUseCase_Precificar(t *testing.T) {
	t.Run("empty precificacoes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)

		_, err := uc.Precificar(context.Background(), "doc-1", nil)
		if !errors.Is(err, ErrPrecificacoesVazias) {
			t.Fatalf("expected ErrPrecificacoesVazias, got %v", err)
		}
	})

	t.Run("documento inativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		inativo := docFixture()
		inativo.Ativo = false
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(inativo, nil)

		_, err := uc.Precificar(context.Background(), "doc-1", []entities.Precificacao{
			{UsuarioID: 7, Valor: decimal.NewFromInt(10)},
		})
		if !errors.Is(err, ErrDocumentoInativo) {
			t.Fatalf("expected ErrDocumentoInativo, got %v", err)
		}
	})

	t.Run("usuario not linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)

		_, err := uc.Precificar(context.Background(), "doc-1", []entities.Precificacao{
			{UsuarioID: 42, Valor: decimal.NewFromInt(10)},
		})
		if !errors.Is(err, ErrDocumentistaNaoVinculado) {
			t.Fatalf("expected ErrDocumentistaNaoVinculado, got %v", err)
		}
	})

	t.Run("non-positive valor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)

		_, err := uc.Precificar(context.Background(), "doc-1", []entities.Precificacao{
			{UsuarioID: 7, Valor: decimal.Zero},
		})
		if !errors.Is(err, ErrValorPrecificacaoInvalido) {
			t.Fatalf("expected ErrValorPrecificacaoInvalido, got %v", err)
		}
	})

	t.Run("reports every duplicated usuario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)

		_, err := uc.Precificar(context.Background(), "doc-1", []entities.Precificacao{
			{UsuarioID: 9, Valor: decimal.NewFromInt(10)},
			{UsuarioID: 9, Valor: decimal.NewFromInt(20)},
			{UsuarioID: 7, Valor: decimal.NewFromInt(30)},
			{UsuarioID: 7, Valor: decimal.NewFromInt(40)},
		})

		var dup *PrecificacaoDuplicadaError
		if !errors.As(err, &dup) {
			t.Fatalf("expected PrecificacaoDuplicadaError, got %v", err)
		}
		if len(dup.UsuarioIDs) != 2 || dup.UsuarioIDs[0] != 7 || dup.UsuarioIDs[1] != 9 {
			t.Fatalf("expected duplicated usuarios [7 9], got %v", dup.UsuarioIDs)
		}
	})

	t.Run("wholesale replacement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
		uc := NewDocumentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), "NDA").DoAndReturn(
			func(_ context.Context, d entities.Documento, _ string) (entities.Documento, error) {
				if len(d.Precificacoes) != 1 || d.Precificacoes[0].UsuarioID != 9 {
					t.Fatalf("expected pricing replaced with usuario 9 only, got %v", d.Precificacoes)
				}
				return d, nil
			})

		// The existing entry for usuario 7 does not survive.
		_, err := uc.Precificar(context.Background(), "doc-1", []entities.Precificacao{
			{UsuarioID: 9, Valor: decimal.RequireFromString("99.90")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDocumentoUseCase_ValorDoDocumentista(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDocumentoRepository(ctrl)
	uc := NewDocumentoUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(docFixture(), nil).Times(2)

	valor, ok, err := uc.ValorDoDocumentista(context.Background(), "doc-1", 7)
	if err != nil || !ok {
		t.Fatalf("expected priced usuario, got ok=%v err=%v", ok, err)
	}
	if !valor.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected 150.00, got %s", valor)
	}

	_, ok, err = uc.ValorDoDocumentista(context.Background(), "doc-1", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("usuario 9 has no pricing entry")
	}
}
