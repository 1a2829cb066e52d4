package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.MovimentoEstoqueRepository = (*MovimentoEstoqueRepo)(nil)

// MovimentoEstoqueRepo implementação de MovimentoEstoqueRepository (usável com pool ou tx).
type MovimentoEstoqueRepo struct {
	q Querier
}

// NewMovimentoEstoqueRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoEstoqueRepository(q Querier) *MovimentoEstoqueRepo {
	return &MovimentoEstoqueRepo{q: q}
}

// Salva persiste um registro de movimentação de estoque.
func (r *MovimentoEstoqueRepo) Salva(ctx context.Context, mov *entity.MovimentoEstoque) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimento_estoque (id, produto_codigo, tipo, quantidade, origem, data)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.ProdutoCodigo, mov.Tipo, mov.Quantidade, mov.Origem, mov.Data,
	)
	if err != nil {
		return fmt.Errorf("insert movimento de estoque: %w", err)
	}
	return nil
}

// ListaPorProduto devolve o histórico de movimentações do produto, mais
// recentes primeiro.
func (r *MovimentoEstoqueRepo) ListaPorProduto(ctx context.Context, produtoCodigo int64, limit, offset int) ([]*entity.MovimentoEstoque, error) {
	query := `
		SELECT id, produto_codigo, tipo, quantidade, origem, data
		FROM movimento_estoque
		WHERE produto_codigo = $1
		ORDER BY data DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, produtoCodigo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimentos: %w", err)
	}
	defer rows.Close()

	var movs []*entity.MovimentoEstoque
	for rows.Next() {
		var m entity.MovimentoEstoque
		if err := rows.Scan(&m.ID, &m.ProdutoCodigo, &m.Tipo, &m.Quantidade, &m.Origem, &m.Data); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		movs = append(movs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar movimentos: %w", err)
	}
	return movs, nil
}
