package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// VendaRepository define a porta de persistência da venda e seus itens.
type VendaRepository interface {
	// Salva persiste uma venda nova e devolve o código atribuído.
	Salva(ctx context.Context, venda *entity.Venda) (int64, error)
	// AtualizaDados grava contraparte e observação de uma venda existente.
	AtualizaDados(ctx context.Context, pessoaCodigo int64, observacao string, codigo int64) error
	// Busca devolve a venda ou nil se não existir.
	Busca(ctx context.Context, codigo int64) (*entity.Venda, error)
	Lista(ctx context.Context) ([]*entity.Venda, error)
	// ListaPorSituacao pagina as vendas na situação dada.
	ListaPorSituacao(ctx context.Context, situacao string, limit, offset int) ([]*entity.Venda, error)
	// VerificaSituacao devolve a situação atual da venda.
	VerificaSituacao(ctx context.Context, codigo int64) (string, error)
	// QtdAbertas conta as vendas em aberto.
	QtdAbertas(ctx context.Context) (int, error)

	SalvaProduto(ctx context.Context, item *entity.VendaProduto) (int64, error)
	RemoveProduto(ctx context.Context, codigoItem int64) error
}
