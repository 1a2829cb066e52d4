package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/originmobi/pdv-fiscal/internal/domain"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// MovimentacaoUseCase é o único caminho de escrita do saldo de produtos:
// aplica uma movimentação assinada e grava o registro de auditoria na mesma
// transação.
type MovimentacaoUseCase struct {
	txRunner TxRunner
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(txRunner TxRunner) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{txRunner: txRunner}
}

// AjustaEstoque abre transação própria e aplica a movimentação.
func (uc *MovimentacaoUseCase) AjustaEstoque(ctx context.Context, produtoCodigo int64, qtd int, direcao, origem string, data time.Time) error {
	return uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
	) error {
		return uc.AjustaEstoqueTx(ctx, produtoRepo, movRepo, produtoCodigo, qtd, direcao, origem, data)
	})
}

// AjustaEstoqueTx aplica a movimentação usando os repositórios do chamador
// (mesma transação). qtd é sempre a magnitude não negativa; a direção decide
// o sinal: ENTRADA soma, SAIDA subtrai. Bloqueia a linha do produto
// (SELECT ... FOR UPDATE) antes da leitura-modificação-escrita do saldo e
// grava o movimento de auditoria com origem e data.
func (uc *MovimentacaoUseCase) AjustaEstoqueTx(
	ctx context.Context,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
	produtoCodigo int64,
	qtd int,
	direcao, origem string,
	data time.Time,
) error {
	if qtd < 0 {
		return domain.ErrEntradaInvalida
	}
	if direcao != entity.EntradaSaidaEntrada && direcao != entity.EntradaSaidaSaida {
		return domain.ErrEntradaInvalida
	}

	// Bloqueia a linha do produto para evitar lost update entre ajustes concorrentes
	produto, err := produtoRepo.BuscaParaAtualizacao(ctx, produtoCodigo)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrProdutoNaoEncontrado
	}

	novoEstoque := produto.Estoque
	if direcao == entity.EntradaSaidaEntrada {
		novoEstoque += qtd
	} else {
		novoEstoque -= qtd
	}
	if err := produtoRepo.AtualizaEstoque(ctx, produtoCodigo, novoEstoque); err != nil {
		return err
	}

	mov := &entity.MovimentoEstoque{
		ID:            uuid.New().String(),
		ProdutoCodigo: produtoCodigo,
		Tipo:          direcao,
		Quantidade:    qtd,
		Origem:        origem,
		Data:          data,
	}
	return movRepo.Salva(ctx, mov)
}
