package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.AjusteRepository = (*AjusteRepo)(nil)

// AjusteRepo implementação de AjusteRepository (usável com pool ou tx).
type AjusteRepo struct {
	q Querier
}

// NewAjusteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAjusteRepository(q Querier) *AjusteRepo {
	return &AjusteRepo{q: q}
}

// Salva persiste um ajuste novo e devolve o código atribuído.
func (r *AjusteRepo) Salva(ctx context.Context, ajuste *entity.Ajuste) (int64, error) {
	query := `
		INSERT INTO ajuste (status, usuario, observacao, data_cadastro)
		VALUES ($1, $2, $3, $4)
		RETURNING codigo`
	var codigo int64
	err := r.q.QueryRow(ctx, query,
		ajuste.Status, ajuste.Usuario, ajuste.Observacao, ajuste.DataCadastro,
	).Scan(&codigo)
	if err != nil {
		return 0, fmt.Errorf("insert ajuste: %w", err)
	}
	return codigo, nil
}

// Atualiza grava status e observação do ajuste.
func (r *AjusteRepo) Atualiza(ctx context.Context, ajuste *entity.Ajuste) error {
	query := `UPDATE ajuste SET status = $2, observacao = $3 WHERE codigo = $1`
	tag, err := r.q.Exec(ctx, query, ajuste.Codigo, ajuste.Status, ajuste.Observacao)
	if err != nil {
		return fmt.Errorf("update ajuste: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update ajuste: ajuste %d inexistente", ajuste.Codigo)
	}
	return nil
}

// Busca devolve o ajuste com seus itens, ou nil se não existir.
func (r *AjusteRepo) Busca(ctx context.Context, codigo int64) (*entity.Ajuste, error) {
	query := `
		SELECT codigo, status, usuario, observacao, data_cadastro
		FROM ajuste WHERE codigo = $1`
	var a entity.Ajuste
	err := r.q.QueryRow(ctx, query, codigo).Scan(
		&a.Codigo, &a.Status, &a.Usuario, &a.Observacao, &a.DataCadastro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar ajuste: %w", err)
	}
	produtos, err := r.listaProdutos(ctx, a.Codigo)
	if err != nil {
		return nil, err
	}
	a.Produtos = produtos
	return &a, nil
}

// Remove apaga o ajuste e seus itens (cascata no schema).
func (r *AjusteRepo) Remove(ctx context.Context, codigo int64) error {
	query := `DELETE FROM ajuste WHERE codigo = $1`
	if _, err := r.q.Exec(ctx, query, codigo); err != nil {
		return fmt.Errorf("remover ajuste: %w", err)
	}
	return nil
}

// Lista pagina os ajustes; filtro de identidade tem precedência.
func (r *AjusteRepo) Lista(ctx context.Context, codigo *int64, limit, offset int) ([]*entity.Ajuste, error) {
	query := `
		SELECT codigo, status, usuario, observacao, data_cadastro
		FROM ajuste
		WHERE ($1::bigint IS NULL OR codigo = $1)
		ORDER BY codigo DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, codigo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar ajustes: %w", err)
	}
	defer rows.Close()

	var ajustes []*entity.Ajuste
	for rows.Next() {
		var a entity.Ajuste
		if err := rows.Scan(&a.Codigo, &a.Status, &a.Usuario, &a.Observacao, &a.DataCadastro); err != nil {
			return nil, fmt.Errorf("scan ajuste: %w", err)
		}
		ajustes = append(ajustes, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar ajustes: %w", err)
	}
	for _, a := range ajustes {
		produtos, err := r.listaProdutos(ctx, a.Codigo)
		if err != nil {
			return nil, err
		}
		a.Produtos = produtos
	}
	return ajustes, nil
}

// AdicionaProduto persiste um item do ajuste e devolve o código do item.
func (r *AjusteRepo) AdicionaProduto(ctx context.Context, item *entity.AjusteProduto) (int64, error) {
	query := `
		INSERT INTO ajuste_produto (ajuste_codigo, produto_codigo, qtd_alteracao)
		VALUES ($1, $2, $3)
		RETURNING codigo`
	var codigo int64
	err := r.q.QueryRow(ctx, query, item.AjusteCodigo, item.ProdutoCodigo, item.QtdAlteracao).Scan(&codigo)
	if err != nil {
		return 0, fmt.Errorf("insert item de ajuste: %w", err)
	}
	return codigo, nil
}

// RemoveProduto apaga um item do ajuste.
func (r *AjusteRepo) RemoveProduto(ctx context.Context, codigoItem int64) error {
	query := `DELETE FROM ajuste_produto WHERE codigo = $1`
	if _, err := r.q.Exec(ctx, query, codigoItem); err != nil {
		return fmt.Errorf("remover item de ajuste: %w", err)
	}
	return nil
}

func (r *AjusteRepo) listaProdutos(ctx context.Context, ajusteCodigo int64) ([]*entity.AjusteProduto, error) {
	query := `
		SELECT codigo, ajuste_codigo, produto_codigo, qtd_alteracao
		FROM ajuste_produto
		WHERE ajuste_codigo = $1
		ORDER BY codigo`
	rows, err := r.q.Query(ctx, query, ajusteCodigo)
	if err != nil {
		return nil, fmt.Errorf("listar itens do ajuste: %w", err)
	}
	defer rows.Close()

	var itens []*entity.AjusteProduto
	for rows.Next() {
		var p entity.AjusteProduto
		if err := rows.Scan(&p.Codigo, &p.AjusteCodigo, &p.ProdutoCodigo, &p.QtdAlteracao); err != nil {
			return nil, fmt.Errorf("scan item de ajuste: %w", err)
		}
		itens = append(itens, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar itens do ajuste: %w", err)
	}
	return itens, nil
}
