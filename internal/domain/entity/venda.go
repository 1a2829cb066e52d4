package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situações da venda.
const (
	VendaSituacaoAberta  = "ABERTA"
	VendaSituacaoFechada = "FECHADA"
)

// Venda é o documento de venda do PDV. Enquanto ABERTA aceita inclusão e
// remoção de itens; FECHADA não aceita mais alterações.
type Venda struct {
	Codigo        int64
	Situacao      string
	PessoaCodigo  int64
	Usuario       string // usuário que abriu a venda (parâmetro explícito)
	Observacao    string
	ValorProdutos decimal.Decimal
	DataCadastro  time.Time
}

// Aberta informa se a venda ainda aceita alterações de itens.
func (v *Venda) Aberta() bool {
	return v.Situacao == VendaSituacaoAberta
}

// VendaProduto é um item da venda.
type VendaProduto struct {
	Codigo        int64
	VendaCodigo   int64
	ProdutoCodigo int64
	ValorBalanca  decimal.Decimal // valor unitário aplicado no momento da inclusão
}
