package entity

import "time"

// Pessoa é a contraparte de documentos fiscais e vendas (cliente ou
// fornecedor). O cadastro em si é colaborador externo; aqui ela só é
// resolvida por código.
type Pessoa struct {
	Codigo       int64
	Nome         string
	CPFCNPJ      string
	DataCadastro time.Time
}
