package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo com seu saldo de estoque.
// O campo Estoque é mutado exclusivamente pelo motor de movimentação
// (internal/application/estoque); as camadas de ajuste e nota fiscal
// nunca o escrevem diretamente.
type Produto struct {
	Codigo       int64
	Descricao    string
	Unidade      string // UN, KG, CX...
	ValorVenda   decimal.Decimal
	NCM          string // classificação fiscal (usada no corpo da NF-e)
	CFOP         string
	Estoque      int
	DataCadastro time.Time
}
