package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// AjusteRepository define a porta de persistência do documento de ajuste
// e seus itens.
type AjusteRepository interface {
	// Salva persiste um ajuste novo e devolve o código atribuído.
	Salva(ctx context.Context, ajuste *entity.Ajuste) (int64, error)
	// Atualiza grava status e observação do ajuste.
	Atualiza(ctx context.Context, ajuste *entity.Ajuste) error
	// Busca devolve o ajuste com seus itens, ou nil se não existir.
	Busca(ctx context.Context, codigo int64) (*entity.Ajuste, error)
	Remove(ctx context.Context, codigo int64) error

	// Lista pagina os ajustes; quando codigo não é nil, o filtro de
	// identidade tem precedência sobre qualquer outro predicado.
	Lista(ctx context.Context, codigo *int64, limit, offset int) ([]*entity.Ajuste, error)

	AdicionaProduto(ctx context.Context, item *entity.AjusteProduto) (int64, error)
	RemoveProduto(ctx context.Context, codigoItem int64) error
}
