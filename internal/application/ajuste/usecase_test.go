package ajuste_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/originmobi/pdv-fiscal/internal/application/ajuste"
	"github.com/originmobi/pdv-fiscal/internal/application/dto"
	"github.com/originmobi/pdv-fiscal/internal/application/estoque"
	"github.com/originmobi/pdv-fiscal/internal/domain"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória. O txRunner fake invoca o callback diretamente com os
// fakes; a atomicidade real fica no adaptador PostgreSQL. O ajustador de
// estoque é o motor verdadeiro (MovimentacaoUseCase), então o teste cobre a
// integração ajuste -> movimentação de ponta a ponta.
// ──────────────────────────────────────────────────────────────────────────────

type fakeAjusteRepo struct {
	ajustes     map[int64]*entity.Ajuste
	proximo     int64
	proximoItem int64
}

func newFakeAjusteRepo() *fakeAjusteRepo {
	return &fakeAjusteRepo{ajustes: make(map[int64]*entity.Ajuste), proximo: 1, proximoItem: 1}
}

func (f *fakeAjusteRepo) Salva(_ context.Context, a *entity.Ajuste) (int64, error) {
	a.Codigo = f.proximo
	f.proximo++
	f.ajustes[a.Codigo] = a
	return a.Codigo, nil
}

func (f *fakeAjusteRepo) Atualiza(_ context.Context, a *entity.Ajuste) error {
	f.ajustes[a.Codigo] = a
	return nil
}

func (f *fakeAjusteRepo) Busca(_ context.Context, codigo int64) (*entity.Ajuste, error) {
	return f.ajustes[codigo], nil
}

func (f *fakeAjusteRepo) Remove(_ context.Context, codigo int64) error {
	delete(f.ajustes, codigo)
	return nil
}

func (f *fakeAjusteRepo) Lista(_ context.Context, codigo *int64, limit, offset int) ([]*entity.Ajuste, error) {
	if codigo != nil {
		if a, ok := f.ajustes[*codigo]; ok {
			return []*entity.Ajuste{a}, nil
		}
		return nil, nil
	}
	var out []*entity.Ajuste
	for _, a := range f.ajustes {
		out = append(out, a)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAjusteRepo) AdicionaProduto(_ context.Context, item *entity.AjusteProduto) (int64, error) {
	item.Codigo = f.proximoItem
	f.proximoItem++
	a := f.ajustes[item.AjusteCodigo]
	a.Produtos = append(a.Produtos, item)
	return item.Codigo, nil
}

func (f *fakeAjusteRepo) RemoveProduto(_ context.Context, codigoItem int64) error {
	for _, a := range f.ajustes {
		for i, p := range a.Produtos {
			if p.Codigo == codigoItem {
				a.Produtos = append(a.Produtos[:i], a.Produtos[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

type fakeProdutoRepo struct {
	produtos map[int64]*entity.Produto
	locks    int // chamadas a BuscaParaAtualizacao
}

func (f *fakeProdutoRepo) Busca(_ context.Context, codigo int64) (*entity.Produto, error) {
	return f.produtos[codigo], nil
}

func (f *fakeProdutoRepo) BuscaParaAtualizacao(_ context.Context, codigo int64) (*entity.Produto, error) {
	f.locks++
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
	ajustes  *fakeAjusteRepo
	produtos *fakeProdutoRepo
	movs     *fakeMovRepo
}

func (f *fakeTxRunner) RunAjuste(ctx context.Context, fn func(
	ajusteRepo repository.AjusteRepository,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
) error) error {
	return fn(f.ajustes, f.produtos, f.movs)
}

type ambiente struct {
	uc       *ajuste.AjusteUseCase
	ajustes  *fakeAjusteRepo
	produtos *fakeProdutoRepo
	movs     *fakeMovRepo
}

func novoAmbiente() *ambiente {
	ajustes := newFakeAjusteRepo()
	produtos := &fakeProdutoRepo{produtos: map[int64]*entity.Produto{
		1: {Codigo: 1, Descricao: "Arroz 5kg", Estoque: 50},
		2: {Codigo: 2, Descricao: "Feijão 1kg", Estoque: 20},
	}}
	movs := &fakeMovRepo{}
	runner := &fakeTxRunner{ajustes: ajustes, produtos: produtos, movs: movs}
	uc := ajuste.NewAjusteUseCase(runner, ajustes, estoque.NewMovimentacaoUseCase(nil))
	return &ambiente{uc: uc, ajustes: ajustes, produtos: produtos, movs: movs}
}

func TestNovo_CriaAProcessar(t *testing.T) {
	amb := novoAmbiente()

	codigo, err := amb.uc.Novo(context.Background(), "maria")
	require.NoError(t, err)

	a, err := amb.uc.Busca(context.Background(), codigo)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, entity.AjusteStatusAProcessar, a.Status)
	assert.Equal(t, "maria", a.Usuario)
	assert.False(t, a.DataCadastro.IsZero())
}

func TestNovo_ExigeUsuario(t *testing.T) {
	amb := novoAmbiente()

	_, err := amb.uc.Novo(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestProcessar_EntradaESaida(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	codigo, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.AdicionaProduto(ctx, codigo, 1, 10) // positivo: entrada
	require.NoError(t, err)
	_, err = amb.uc.AdicionaProduto(ctx, codigo, 2, -7) // negativo: saída
	require.NoError(t, err)

	msg, err := amb.uc.Processar(ctx, codigo, "contagem mensal")
	require.NoError(t, err)
	assert.Equal(t, ajuste.MensagemProcessado, msg)

	// saldos aplicados pelo sinal do delta, com a linha bloqueada por item
	assert.Equal(t, 60, amb.produtos.produtos[1].Estoque)
	assert.Equal(t, 13, amb.produtos.produtos[2].Estoque)
	assert.Equal(t, 2, amb.produtos.locks)

	// auditoria: magnitude sempre positiva, direção pelo sinal
	require.Len(t, amb.movs.movimentos, 2)
	assert.Equal(t, entity.EntradaSaidaEntrada, amb.movs.movimentos[0].Tipo)
	assert.Equal(t, 10, amb.movs.movimentos[0].Quantidade)
	assert.Equal(t, entity.EntradaSaidaSaida, amb.movs.movimentos[1].Tipo)
	assert.Equal(t, 7, amb.movs.movimentos[1].Quantidade)
	assert.Contains(t, amb.movs.movimentos[0].Origem, "Ajuste de estoque")

	// transição definitiva com observação registrada
	a, _ := amb.uc.Busca(ctx, codigo)
	assert.Equal(t, entity.AjusteStatusProcessado, a.Status)
	assert.Equal(t, "contagem mensal", a.Observacao)
}

func TestProcessar_DeltaZeroNaoMovimenta(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	codigo, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.AdicionaProduto(ctx, codigo, 1, 0)
	require.NoError(t, err)

	msg, err := amb.uc.Processar(ctx, codigo, "")
	require.NoError(t, err)
	assert.Equal(t, ajuste.MensagemProcessado, msg)

	assert.Equal(t, 50, amb.produtos.produtos[1].Estoque)
	assert.Empty(t, amb.movs.movimentos)

	a, _ := amb.uc.Busca(ctx, codigo)
	assert.Equal(t, entity.AjusteStatusProcessado, a.Status)
}

func TestProcessar_JaProcessadoRejeita(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	codigo, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.AdicionaProduto(ctx, codigo, 1, 10)
	require.NoError(t, err)

	_, err = amb.uc.Processar(ctx, codigo, "")
	require.NoError(t, err)

	// segunda tentativa: rejeitada sem tocar o estoque de novo
	_, err = amb.uc.Processar(ctx, codigo, "")
	assert.ErrorIs(t, err, domain.ErrAjusteProcessado)
	assert.Equal(t, 60, amb.produtos.produtos[1].Estoque)
	assert.Len(t, amb.movs.movimentos, 1)
}

func TestProcessar_Inexistente(t *testing.T) {
	amb := novoAmbiente()

	_, err := amb.uc.Processar(context.Background(), 99, "")
	assert.ErrorIs(t, err, domain.ErrAjusteNaoEncontrado)
}

func TestAdicionaProduto_AjusteProcessadoRejeita(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	codigo, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.Processar(ctx, codigo, "")
	require.NoError(t, err)

	_, err = amb.uc.AdicionaProduto(ctx, codigo, 1, 5)
	assert.ErrorIs(t, err, domain.ErrAjusteProcessado)

	err = amb.uc.RemoveProduto(ctx, codigo, 1)
	assert.ErrorIs(t, err, domain.ErrAjusteProcessado)
}

func TestRemover_PendenteRemoveSemTocarEstoque(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	codigo, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.AdicionaProduto(ctx, codigo, 1, 10)
	require.NoError(t, err)

	a, _ := amb.uc.Busca(ctx, codigo)
	require.NoError(t, amb.uc.Remover(ctx, a))

	removido, _ := amb.uc.Busca(ctx, codigo)
	assert.Nil(t, removido)
	assert.Equal(t, 50, amb.produtos.produtos[1].Estoque)
	assert.Empty(t, amb.movs.movimentos)
}

func TestRemover_ProcessadoRejeita(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	codigo, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.Processar(ctx, codigo, "")
	require.NoError(t, err)

	a, _ := amb.uc.Busca(ctx, codigo)
	err = amb.uc.Remover(ctx, a)
	assert.ErrorIs(t, err, domain.ErrAjusteProcessado)

	intacto, _ := amb.uc.Busca(ctx, codigo)
	assert.NotNil(t, intacto)
}

func TestLista_FiltroDeIdentidadeTemPrecedencia(t *testing.T) {
	amb := novoAmbiente()
	ctx := context.Background()

	c1, err := amb.uc.Novo(ctx, "maria")
	require.NoError(t, err)
	_, err = amb.uc.Novo(ctx, "joao")
	require.NoError(t, err)

	out, err := amb.uc.Lista(ctx, dto.PageRequest{}, dto.AjusteFilter{Codigo: &c1})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, c1, out[0].Codigo)

	todos, err := amb.uc.Lista(ctx, dto.PageRequest{}, dto.AjusteFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
