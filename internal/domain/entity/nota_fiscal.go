package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de nota fiscal quanto à direção da operação.
const (
	NotaFiscalTipoEntrada = "ENTRADA"
	NotaFiscalTipoSaida   = "SAIDA"
)

// NotaFiscal é o documento fiscal emitido. Criada em duas fases:
// cadastro (registro persistido, sem corpo) e emissão (chave de acesso
// definitiva e XML gravado no armazém de documentos). A chave de acesso,
// uma vez atribuída, nunca muda e é única entre todas as notas.
type NotaFiscal struct {
	Codigo            int64
	Serie             int
	Numero            int64
	Modelo            int    // 55 = NF-e
	ChaveAcesso       string // 44 posições numéricas; vazia até a emissão
	DV                int    // dígito verificador da chave (0–9)
	NaturezaOperacao  string
	Tipo              string // ENTRADA ou SAIDA
	PessoaCodigo      int64  // destinatário/remetente
	Totais            *NotaFiscalTotais
	DataCadastro      time.Time
	DataEmissao       *time.Time // nil até a emissão
}

// Emitida informa se a nota já tem chave de acesso atribuída.
func (n *NotaFiscal) Emitida() bool {
	return n.ChaveAcesso != ""
}

// NotaFiscalTotais é o bloco de agregados monetários da nota. Objeto de
// valor plano, sem ciclo de vida próprio, embutido na nota.
type NotaFiscalTotais struct {
	Codigo        int64
	ValorProdutos decimal.Decimal
	ValorDesconto decimal.Decimal
	ValorICMS     decimal.Decimal
	ValorIPI      decimal.Decimal
	ValorPIS      decimal.Decimal
	ValorCOFINS   decimal.Decimal
	ValorFrete    decimal.Decimal
	ValorTotal    decimal.Decimal
}

// TotaisZerados devolve o bloco de totais com todos os agregados em zero,
// usado no cadastro da nota antes do fechamento dos valores.
func TotaisZerados() *NotaFiscalTotais {
	return &NotaFiscalTotais{
		ValorProdutos: decimal.Zero,
		ValorDesconto: decimal.Zero,
		ValorICMS:     decimal.Zero,
		ValorIPI:      decimal.Zero,
		ValorPIS:      decimal.Zero,
		ValorCOFINS:   decimal.Zero,
		ValorFrete:    decimal.Zero,
		ValorTotal:    decimal.Zero,
	}
}
