package repository

import (
	"context"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// EmpresaRepository fornece os parâmetros fiscais da empresa ativa
// (série, ambiente, CNPJ, UF).
type EmpresaRepository interface {
	// Ativa devolve a empresa configurada, ou nil quando nenhuma existe —
	// condição que impede o cadastro de notas fiscais.
	Ativa(ctx context.Context) (*entity.Empresa, error)
}
