package entity

// Ambientes de emissão da NF-e.
const (
	AmbienteProducao    = 1
	AmbienteHomologacao = 2
)

// Empresa agrega os parâmetros fiscais da empresa ativa: série em uso,
// ambiente de emissão e identificação do emitente. Sem uma empresa
// configurada nenhuma nota pode ser cadastrada.
type Empresa struct {
	Codigo   int64
	Nome     string
	CNPJ     string // somente dígitos ou com máscara; normalizado ao montar a chave
	IE       string // inscrição estadual
	UF       int    // código IBGE da unidade federativa
	Serie    int    // série fiscal em uso
	Ambiente int    // 1 = produção, 2 = homologação
}

// SerieState é o estado de numeração de uma série fiscal: último número
// emitido e ambiente. A leitura-incremento-escrita é atômica por série
// (responsabilidade do adaptador de persistência).
type SerieState struct {
	Serie        int
	UltimoNumero int64
	Ambiente     int
}
