package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// NotaFiscalRepository define a porta de persistência da nota fiscal.
type NotaFiscalRepository interface {
	// Salva persiste uma nota nova (fase de cadastro) e devolve o código.
	Salva(ctx context.Context, nota *entity.NotaFiscal) (int64, error)
	// Atualiza grava chave de acesso, DV e data de emissão (fase de emissão).
	Atualiza(ctx context.Context, nota *entity.NotaFiscal) error
	// Busca devolve a nota ou nil se não existir.
	Busca(ctx context.Context, codigo int64) (*entity.NotaFiscal, error)
	Lista(ctx context.Context) ([]*entity.NotaFiscal, error)
	// TotalEmitidas conta as notas com chave de acesso atribuída.
	TotalEmitidas(ctx context.Context) (int, error)
}

// TotaisRepository define a porta do subsistema de totais: persiste o bloco
// de agregados monetários e devolve o código gerado.
type TotaisRepository interface {
	Salva(ctx context.Context, totais *entity.NotaFiscalTotais) (int64, error)
}
