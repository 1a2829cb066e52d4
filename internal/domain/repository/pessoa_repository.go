package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// PessoaRepository resolve contrapartes por código (colaborador externo do
// cadastro de pessoas; aqui somente leitura).
type PessoaRepository interface {
	// Busca devolve a pessoa ou nil se não existir.
	Busca(ctx context.Context, codigo int64) (*entity.Pessoa, error)
}
