package repository

import "context"

// SerieRepository aloca a numeração sequencial de cada série fiscal.
type SerieRepository interface {
	// ProximoNumero devolve o próximo número da série: último emitido + 1,
	// persistindo o novo valor. Série nunca vista começa em 0, logo a
	// primeira alocação devolve 1.
	//
	// Contrato de concorrência: chamadas simultâneas para a mesma série
	// nunca devolvem o mesmo número e os números são estritamente
	// crescentes — a leitura-incremento-escrita tem de ser uma unidade
	// atômica (update condicional em uma instrução, ou lock por série),
	// não um read-then-write. Séries distintas são independentes.
	ProximoNumero(ctx context.Context, serie int) (int64, error)
}
