// Package memoria traz adaptadores em memória usados em testes e em
// execução sem banco (demonstração, ferramentas de linha de comando).
package memoria

import (
	"context"
	"sync"

	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.SerieRepository = (*SerieRepo)(nil)

// SerieRepo guarda o contador de cada série em memória. O mutex garante o
// contrato de ProximoNumero: chamadas concorrentes na mesma série recebem
// números distintos e estritamente crescentes.
type SerieRepo struct {
	mu      sync.Mutex
	ultimos map[int]int64
}

// NewSerieRepository cria o repositório com todas as séries zeradas.
func NewSerieRepository() *SerieRepo {
	return &SerieRepo{ultimos: make(map[int]int64)}
}

// ProximoNumero incrementa e devolve o contador da série.
func (r *SerieRepo) ProximoNumero(_ context.Context, serie int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ultimos[serie]++
	return r.ultimos[serie], nil
}
