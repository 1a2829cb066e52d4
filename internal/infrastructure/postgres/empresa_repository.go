package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação de EmpresaRepository.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Ativa devolve a empresa configurada, ou nil quando nenhuma existe.
// O sistema trabalha com uma única empresa ativa por vez.
func (r *EmpresaRepo) Ativa(ctx context.Context) (*entity.Empresa, error) {
	query := `
		SELECT codigo, nome, cnpj, ie, uf, serie, ambiente
		FROM empresa
		ORDER BY codigo
		LIMIT 1`
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query).Scan(
		&e.Codigo, &e.Nome, &e.CNPJ, &e.IE, &e.UF, &e.Serie, &e.Ambiente,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar empresa ativa: %w", err)
	}
	return &e, nil
}
