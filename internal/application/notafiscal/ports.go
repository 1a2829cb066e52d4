package notafiscal

import "github.com/originmobi/pdv-fiscal/internal/domain/entity"

// DocumentStore é o armazém durável do corpo serializado da nota, endereçado
// pela chave de acesso. Chave e conteúdo são opacos; gravar sobrescreve e
// remover chave inexistente não é erro.
type DocumentStore interface {
	Salva(chave, conteudo string) error
	Remove(chave string) error
}

// CorpoBuilder serializa o corpo do documento fiscal (XML da NF-e) a partir
// da nota e dos dados do emitente e da contraparte.
type CorpoBuilder interface {
	Monta(nota *entity.NotaFiscal, empresa *entity.Empresa, pessoa *entity.Pessoa) ([]byte, error)
}
