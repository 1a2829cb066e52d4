package entity

import "time"

// Situações do ajuste de estoque. A transição é única e definitiva:
// APROCESSAR -> PROCESSADO. Um ajuste PROCESSADO não volta atrás nem
// pode ser removido.
const (
	AjusteStatusAProcessar = "APROCESSAR"
	AjusteStatusProcessado = "PROCESSADO"
)

// Ajuste é o documento de correção de estoque: uma lista ordenada de itens
// com deltas assinados, processada no máximo uma vez.
type Ajuste struct {
	Codigo       int64
	Status       string
	Usuario      string // usuário que abriu o ajuste (parâmetro explícito, sem contexto ambiente)
	Observacao   string
	DataCadastro time.Time
	Produtos     []*AjusteProduto
}

// Processado informa se o ajuste já foi aplicado ao estoque.
func (a *Ajuste) Processado() bool {
	return a.Status == AjusteStatusProcessado
}

// AjusteProduto é um item do ajuste: referência ao produto e delta assinado
// de quantidade (positivo = entrada, negativo = saída). Imutável após criado.
type AjusteProduto struct {
	Codigo        int64
	AjusteCodigo  int64
	ProdutoCodigo int64
	QtdAlteracao  int // delta assinado
}
