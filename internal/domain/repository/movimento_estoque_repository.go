package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// MovimentoEstoqueRepository define a porta de persistência do registro de
// auditoria de movimentações de estoque.
type MovimentoEstoqueRepository interface {
	Salva(ctx context.Context, mov *entity.MovimentoEstoque) error
	ListaPorProduto(ctx context.Context, produtoCodigo int64, limit, offset int) ([]*entity.MovimentoEstoque, error)
}
