package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/originmobi/pdv-fiscal/internal/application/ajuste"
	"github.com/originmobi/pdv-fiscal/internal/application/estoque"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// Garante que TxRunner implementa estoque.TxRunner e ajuste.TxRunner.
var _ estoque.TxRunner = (*TxRunner)(nil)
var _ ajuste.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação com os repositórios de estoque e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProdutoRepository(tx), NewMovimentoEstoqueRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAjuste inicia uma transação com os repositórios de ajuste e de estoque
// (para o processamento de ajustes: ou todos os itens entram, ou nenhum).
func (r *TxRunner) RunAjuste(ctx context.Context, fn func(
	ajusteRepo repository.AjusteRepository,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoEstoqueRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAjusteRepository(tx), NewProdutoRepository(tx), NewMovimentoEstoqueRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
