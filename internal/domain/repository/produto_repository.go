package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// ProdutoRepository define a porta de consulta e atualização de saldo de
// produtos. O saldo só é escrito pelo motor de movimentação.
type ProdutoRepository interface {
	// Busca devolve o produto ou nil se não existir.
	Busca(ctx context.Context, codigo int64) (*entity.Produto, error)

	// BuscaParaAtualizacao devolve o produto bloqueando a linha
	// (SELECT ... FOR UPDATE) para a leitura-modificação-escrita do saldo.
	// Exigida dentro de transação; previne lost update entre ajustes
	// concorrentes sobre o mesmo produto.
	BuscaParaAtualizacao(ctx context.Context, codigo int64) (*entity.Produto, error)

	AtualizaEstoque(ctx context.Context, codigo int64, estoque int) error
}
