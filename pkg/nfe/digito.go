// Package nfe: rotinas fiscais puras da NF-e (módulo 55) — dígito verificador
// módulo 11 e composição da chave de acesso de 44 posições.
package nfe

import (
	"errors"
	"fmt"
)

// Pesos do módulo 11 da chave de acesso: começam em 2 e crescem até 9,
// reiniciando em 2, aplicados do último dígito para o primeiro.
const (
	pesoInicial = 2
	pesoMaximo  = 9
)

// ErrChaveInvalida indica entrada vazia ou com caracteres não numéricos.
// O valor numérico retornado junto com o erro é sempre 0, o mesmo resultado
// degradado do sistema de origem — o chamador não deve tratar 0 como prova
// de entrada válida.
var ErrChaveInvalida = errors.New("chave deve conter apenas dígitos decimais")

// CalculaDV calcula o dígito verificador módulo 11 de uma cadeia numérica.
// Percorre os dígitos do último para o primeiro multiplicando cada um pelo
// peso corrente (2..9 cíclico) e soma os produtos. Com resto = soma % 11,
// o resultado é 0 quando resto < 2 e 11 - resto nos demais casos.
func CalculaDV(chave string) (int, error) {
	if chave == "" {
		return 0, fmt.Errorf("calcular DV: %w", ErrChaveInvalida)
	}
	soma := 0
	peso := pesoInicial
	for i := len(chave) - 1; i >= 0; i-- {
		c := chave[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("calcular DV: posição %d: %w", i, ErrChaveInvalida)
		}
		soma += int(c-'0') * peso
		peso++
		if peso > pesoMaximo {
			peso = pesoInicial
		}
	}
	resto := soma % 11
	if resto < 2 {
		return 0, nil
	}
	return 11 - resto, nil
}
