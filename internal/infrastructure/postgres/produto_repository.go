package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const colunasProduto = `codigo, descricao, unidade, valor_venda, ncm, cfop, estoque, data_cadastro`

// Busca devolve o produto ou nil se não existir.
func (r *ProdutoRepo) Busca(ctx context.Context, codigo int64) (*entity.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produto WHERE codigo = $1`
	p, err := scanProduto(r.q.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar produto: %w", err)
	}
	return p, nil
}

// BuscaParaAtualizacao devolve o produto bloqueando a linha (SELECT FOR UPDATE).
func (r *ProdutoRepo) BuscaParaAtualizacao(ctx context.Context, codigo int64) (*entity.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produto WHERE codigo = $1 FOR UPDATE`
	p, err := scanProduto(r.q.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar produto para atualização: %w", err)
	}
	return p, nil
}

// AtualizaEstoque grava o novo saldo do produto.
func (r *ProdutoRepo) AtualizaEstoque(ctx context.Context, codigo int64, estoque int) error {
	query := `UPDATE produto SET estoque = $2 WHERE codigo = $1`
	tag, err := r.q.Exec(ctx, query, codigo, estoque)
	if err != nil {
		return fmt.Errorf("atualizar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("atualizar estoque: produto %d inexistente", codigo)
	}
	return nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.Codigo, &p.Descricao, &p.Unidade, &p.ValorVenda,
		&p.NCM, &p.CFOP, &p.Estoque, &p.DataCadastro,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
