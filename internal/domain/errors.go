package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// Dois grupos: "não encontrado" (referência que não resolve) e "estado
// inválido" (operação vedada pela situação atual do documento). Ambos são
// devolvidos ao chamador imediato, sem retry interno.
var (
	// Não encontrado
	ErrProdutoNaoEncontrado  = errors.New("produto não encontrado")
	ErrPessoaNaoEncontrada   = errors.New("pessoa não encontrada")
	ErrAjusteNaoEncontrado   = errors.New("ajuste não encontrado")
	ErrNotaNaoEncontrada     = errors.New("nota fiscal não encontrada")
	ErrVendaNaoEncontrada    = errors.New("venda não encontrada")
	ErrEmpresaNaoConfigurada = errors.New("empresa não configurada")

	// Estado inválido — mensagens preservadas do sistema de origem
	ErrAjusteProcessado = errors.New("o ajuste já está processado")
	ErrVendaFechada     = errors.New("venda fechada")

	ErrEntradaInvalida = errors.New("entrada inválida")
)
