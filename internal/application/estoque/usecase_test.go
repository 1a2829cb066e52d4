package estoque_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/originmobi/pdv-fiscal/internal/application/estoque"
	"github.com/originmobi/pdv-fiscal/internal/domain"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios de estoque. O txRunner fake apenas invoca
// o callback com os fakes — a atomicidade real é responsabilidade do adaptador
// PostgreSQL; aqui interessa a aritmética do saldo e o registro de auditoria.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[int64]*entity.Produto
}

func (f *fakeProdutoRepo) Busca(_ context.Context, codigo int64) (*entity.Produto, error) {
	return f.produtos[codigo], nil
}

func (f *fakeProdutoRepo) BuscaParaAtualizacao(_ context.Context, codigo int64) (*entity.Produto, error) {
	return f.produtos[codigo], nil
}

func (f *fakeProdutoRepo) AtualizaEstoque(_ context.Context, codigo int64, estoque int) error {
	f.produtos[codigo].Estoque = estoque
	return nil
}

type fakeMovRepo struct {
	movimentos []*entity.MovimentoEstoque
}

func (f *fakeMovRepo) Salva(_ context.Context, mov *entity.MovimentoEstoque) error {
	f.movimentos = append(f.movimentos, mov)
	return nil
}

func (f *fakeMovRepo) ListaPorProduto(_ context.Context, produtoCodigo int64, _, _ int) ([]*entity.MovimentoEstoque, error) {
	var out []*entity.MovimentoEstoque
	for _, m := range f.movimentos {
		if m.ProdutoCodigo == produtoCodigo {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	produtos *fakeProdutoRepo
	movs     *fakeMovRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
) error) error {
	return fn(f.produtos, f.movs)
}

func novoAmbiente(estoqueInicial int) (*estoque.MovimentacaoUseCase, *fakeProdutoRepo, *fakeMovRepo) {
	produtos := &fakeProdutoRepo{produtos: map[int64]*entity.Produto{
		1: {Codigo: 1, Descricao: "Arroz 5kg", Estoque: estoqueInicial},
	}}
	movs := &fakeMovRepo{}
	uc := estoque.NewMovimentacaoUseCase(&fakeTxRunner{produtos: produtos, movs: movs})
	return uc, produtos, movs
}

func TestAjustaEstoque_Entrada(t *testing.T) {
	uc, produtos, movs := novoAmbiente(10)

	err := uc.AjustaEstoque(context.Background(), 1, 5, entity.EntradaSaidaEntrada, "compra 7", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 15, produtos.produtos[1].Estoque)
	require.Len(t, movs.movimentos, 1)
	mov := movs.movimentos[0]
	assert.Equal(t, entity.EntradaSaidaEntrada, mov.Tipo)
	assert.Equal(t, 5, mov.Quantidade)
	assert.Equal(t, "compra 7", mov.Origem)
	assert.NotEmpty(t, mov.ID)
}

func TestAjustaEstoque_Saida(t *testing.T) {
	uc, produtos, movs := novoAmbiente(10)

	err := uc.AjustaEstoque(context.Background(), 1, 4, entity.EntradaSaidaSaida, "venda 3", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 6, produtos.produtos[1].Estoque)
	require.Len(t, movs.movimentos, 1)
	assert.Equal(t, entity.EntradaSaidaSaida, movs.movimentos[0].Tipo)
	assert.Equal(t, 4, movs.movimentos[0].Quantidade)
}

// Saída maior que o saldo deixa o estoque negativo: a contagem física manda,
// o sistema registra o que foi informado.
func TestAjustaEstoque_SaldoNegativoPermitido(t *testing.T) {
	uc, produtos, _ := novoAmbiente(3)

	err := uc.AjustaEstoque(context.Background(), 1, 8, entity.EntradaSaidaSaida, "ajuste", time.Now())
	require.NoError(t, err)
	assert.Equal(t, -5, produtos.produtos[1].Estoque)
}

func TestAjustaEstoque_ProdutoInexistente(t *testing.T) {
	uc, _, movs := novoAmbiente(10)

	err := uc.AjustaEstoque(context.Background(), 99, 5, entity.EntradaSaidaEntrada, "", time.Now())
	assert.ErrorIs(t, err, domain.ErrProdutoNaoEncontrado)
	assert.Empty(t, movs.movimentos)
}

func TestAjustaEstoque_EntradaInvalida(t *testing.T) {
	uc, produtos, movs := novoAmbiente(10)

	// quantidade negativa
	err := uc.AjustaEstoque(context.Background(), 1, -1, entity.EntradaSaidaEntrada, "", time.Now())
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	// direção desconhecida
	err = uc.AjustaEstoque(context.Background(), 1, 1, "TRANSFERENCIA", "", time.Now())
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	assert.Equal(t, 10, produtos.produtos[1].Estoque)
	assert.Empty(t, movs.movimentos)
}
