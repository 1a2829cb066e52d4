package ajuste

import (
	"context"
	"time"

	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação que inclui os
// repositórios de ajuste e de estoque. Ou todos os itens do ajuste são
// aplicados e o status persiste, ou nada é gravado.
type TxRunner interface {
	RunAjuste(ctx context.Context, fn func(
		ajusteRepo repository.AjusteRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
	) error) error
}

// EstoqueAjustador integra o processamento de ajustes com o motor de
// movimentação. AjustaEstoqueTx usa os repositórios do chamador (mesma
// transação); se devolver erro, o chamador faz rollback.
type EstoqueAjustador interface {
	AjustaEstoqueTx(
		ctx context.Context,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
		produtoCodigo int64,
		qtd int,
		direcao, origem string,
		data time.Time,
	) error
}
