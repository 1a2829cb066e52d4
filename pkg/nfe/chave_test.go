package nfe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/originmobi/pdv-fiscal/pkg/nfe"
)

func paramsValidos() nfe.ChaveParams {
	return nfe.ChaveParams{
		UF:          35, // São Paulo
		Emissao:     time.Date(2025, time.June, 14, 10, 30, 0, 0, time.UTC),
		CNPJ:        "11.222.333/0001-81",
		Modelo:      55,
		Serie:       1,
		Numero:      15,
		TipoEmissao: 1,
		Codigo:      12345678,
	}
}

func TestChaveAcesso_ComposicaoPosicional(t *testing.T) {
	chave, err := nfe.ChaveAcesso(paramsValidos())
	require.NoError(t, err)

	require.Len(t, chave, nfe.TamanhoChave, "a chave de acesso deve ter 44 posições")
	for i := 0; i < len(chave); i++ {
		assert.True(t, chave[i] >= '0' && chave[i] <= '9',
			"posição %d deve ser dígito decimal, encontrado %q", i, chave[i])
	}

	// Campos nas larguras fixas: cUF(2) AAMM(4) CNPJ(14) mod(2) série(3) nº(9) tpEmis(1) cNF(8) DV(1)
	assert.Equal(t, "35", chave[0:2], "cUF")
	assert.Equal(t, "2506", chave[2:6], "AAMM da emissão")
	assert.Equal(t, "11222333000181", chave[6:20], "CNPJ sem máscara")
	assert.Equal(t, "55", chave[20:22], "modelo")
	assert.Equal(t, "001", chave[22:25], "série com zero à esquerda")
	assert.Equal(t, "000000015", chave[25:34], "número com zero à esquerda")
	assert.Equal(t, "1", chave[34:35], "tipo de emissão")
	assert.Equal(t, "12345678", chave[35:43], "código numérico cNF")
}

// TestChaveAcesso_DVFecha valida a propriedade de fechamento: o último dígito
// da chave é exatamente o DV módulo 11 dos 43 primeiros.
func TestChaveAcesso_DVFecha(t *testing.T) {
	p := paramsValidos()
	for _, numero := range []int64{1, 15, 999, 123456789} {
		p.Numero = numero
		chave, err := nfe.ChaveAcesso(p)
		require.NoError(t, err, "número %d", numero)

		dv, err := nfe.CalculaDV(chave[:nfe.TamanhoChave-1])
		require.NoError(t, err)
		assert.Equal(t, byte('0'+dv), chave[nfe.TamanhoChave-1],
			"número %d: o DV anexado deve fechar com o módulo 11 dos 43 primeiros dígitos", numero)
	}
}

func TestChaveAcesso_NumerosDistintosChavesDistintas(t *testing.T) {
	p1 := paramsValidos()
	p2 := paramsValidos()
	p2.Numero = p1.Numero + 1

	c1, err1 := nfe.ChaveAcesso(p1)
	c2, err2 := nfe.ChaveAcesso(p2)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, c1, c2, "números distintos na mesma série devem gerar chaves distintas")
}

// ── Validações de entrada ─────────────────────────────────────────────────────

func TestChaveAcesso_CNPJInvalido(t *testing.T) {
	p := paramsValidos()
	p.CNPJ = "123"
	_, err := nfe.ChaveAcesso(p)
	assert.Error(t, err, "CNPJ com menos de 14 dígitos deve ser rejeitado")
}

func TestChaveAcesso_EmissaoObrigatoria(t *testing.T) {
	p := paramsValidos()
	p.Emissao = time.Time{}
	_, err := nfe.ChaveAcesso(p)
	assert.Error(t, err)
}

func TestChaveAcesso_NumeroPositivo(t *testing.T) {
	p := paramsValidos()
	p.Numero = 0
	_, err := nfe.ChaveAcesso(p)
	assert.Error(t, err)
}

func TestChaveAcesso_SerieForaDaLargura(t *testing.T) {
	p := paramsValidos()
	p.Serie = 1000 // série ocupa 3 posições; 4 dígitos estouram o corpo de 43
	_, err := nfe.ChaveAcesso(p)
	assert.Error(t, err)
}
