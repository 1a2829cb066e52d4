package postgres

import (
	"context"
	"fmt"

	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.SerieRepository = (*SerieRepo)(nil)

// SerieRepo implementação de SerieRepository (usável com pool ou tx).
type SerieRepo struct {
	q Querier
}

// NewSerieRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSerieRepository(q Querier) *SerieRepo {
	return &SerieRepo{q: q}
}

// ProximoNumero aloca o próximo número da série em uma única instrução:
// o upsert incrementa o contador e devolve o valor novo na mesma ida ao
// banco, então duas emissões concorrentes na mesma série nunca recebem
// o mesmo número. Série nunca vista começa em 0 e devolve 1.
func (r *SerieRepo) ProximoNumero(ctx context.Context, serie int) (int64, error) {
	query := `
		INSERT INTO serie_nfe (serie, ultimo_numero)
		VALUES ($1, 1)
		ON CONFLICT (serie)
		DO UPDATE SET ultimo_numero = serie_nfe.ultimo_numero + 1
		RETURNING ultimo_numero`
	var numero int64
	if err := r.q.QueryRow(ctx, query, serie).Scan(&numero); err != nil {
		return 0, fmt.Errorf("alocar número da série %d: %w", serie, err)
	}
	return numero, nil
}
