package nfe

import (
	"fmt"
	"time"
)

// Larguras fixas dos campos posicionais da chave de acesso (43 dígitos + DV).
const (
	larguraUF     = 2
	larguraAnoMes = 4
	larguraCNPJ   = 14
	larguraModelo = 2
	larguraSerie  = 3
	larguraNumero = 9
	larguraEmis   = 1
	larguraCodigo = 8

	// TamanhoChave é o total de posições da chave de acesso (43 + DV).
	TamanhoChave = 44
)

// ChaveParams contém os campos da chave de acesso na ordem posicional da NF-e:
// cUF + AAMM + CNPJ + modelo + série + número + tpEmis + cNF.
// O ambiente (produção/homologação) não ocupa posição na chave; ele acompanha
// a configuração do emitente e aparece apenas no corpo do documento.
type ChaveParams struct {
	UF          int       // código IBGE da unidade federativa (ex: 35 = SP)
	Emissao     time.Time // data de emissão (usa-se ano e mês, AAMM)
	CNPJ        string    // CNPJ do emitente, somente dígitos
	Modelo      int       // modelo do documento (55 = NF-e)
	Serie       int       // série fiscal
	Numero      int64     // número sequencial da nota na série
	TipoEmissao int       // forma de emissão (1 = normal)
	Codigo      int       // código numérico cNF de 8 dígitos
}

// ChaveAcesso monta a chave de acesso de 44 posições: concatena os campos com
// zero à esquerda nas larguras fixas (43 dígitos) e anexa o DV módulo 11
// calculado sobre esses 43 dígitos. A unicidade da chave depende de
// (série, número, cNF) não se repetirem; a unicidade do número é garantida
// pelo alocador de sequência da série.
func ChaveAcesso(p ChaveParams) (string, error) {
	cnpj := somenteDigitos(p.CNPJ)
	if len(cnpj) != larguraCNPJ {
		return "", fmt.Errorf("chave de acesso: CNPJ deve ter %d dígitos, recebidos %d", larguraCNPJ, len(cnpj))
	}
	if p.Emissao.IsZero() {
		return "", fmt.Errorf("chave de acesso: data de emissão é obrigatória")
	}
	if p.Numero <= 0 {
		return "", fmt.Errorf("chave de acesso: número da nota deve ser positivo")
	}

	base := fmt.Sprintf("%0*d%s%s%0*d%0*d%0*d%0*d%0*d",
		larguraUF, p.UF,
		p.Emissao.Format("0601"), // AAMM
		cnpj,
		larguraModelo, p.Modelo,
		larguraSerie, p.Serie,
		larguraNumero, p.Numero,
		larguraEmis, p.TipoEmissao,
		larguraCodigo, p.Codigo,
	)
	if len(base) != TamanhoChave-1 {
		return "", fmt.Errorf("chave de acesso: corpo com %d posições, esperado %d (campo fora da largura)", len(base), TamanhoChave-1)
	}

	dv, err := CalculaDV(base)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", base, dv), nil
}

func somenteDigitos(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
