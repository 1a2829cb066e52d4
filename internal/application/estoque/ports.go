package estoque

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante atomicidade da
// leitura-modificação-escrita do saldo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
	) error) error
}
