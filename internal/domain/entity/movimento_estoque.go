package entity

import "time"

// Direções de movimentação de estoque.
const (
	EntradaSaidaEntrada = "ENTRADA"
	EntradaSaidaSaida   = "SAIDA"
)

// MovimentoEstoque é o registro de auditoria de cada alteração de saldo:
// direção, magnitude (sempre não negativa), origem textual e momento.
type MovimentoEstoque struct {
	ID            string // uuid
	ProdutoCodigo int64
	Tipo          string // ENTRADA ou SAIDA
	Quantidade    int    // magnitude, nunca negativa
	Origem        string // motivo informado pelo chamador (ex: "Ajuste de estoque 12")
	Data          time.Time
}
