package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.PessoaRepository = (*PessoaRepo)(nil)

// PessoaRepo implementação de PessoaRepository (somente leitura).
type PessoaRepo struct {
	q Querier
}

// NewPessoaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPessoaRepository(q Querier) *PessoaRepo {
	return &PessoaRepo{q: q}
}

// Busca devolve a pessoa ou nil se não existir.
func (r *PessoaRepo) Busca(ctx context.Context, codigo int64) (*entity.Pessoa, error) {
	query := `SELECT codigo, nome, cpf_cnpj, data_cadastro FROM pessoa WHERE codigo = $1`
	var p entity.Pessoa
	err := r.q.QueryRow(ctx, query, codigo).Scan(&p.Codigo, &p.Nome, &p.CPFCNPJ, &p.DataCadastro)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar pessoa: %w", err)
	}
	return &p, nil
}
