// Package nfe monta o corpo XML da NF-e a partir da nota e dos dados do
// emitente e destinatário.
package nfe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/originmobi/pdv-fiscal/internal/application/notafiscal"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
)

// Namespace do layout da NF-e (Portal Nacional).
const NsNFe = "http://www.portalfiscal.inf.br/nfe"

var _ notafiscal.CorpoBuilder = (*XMLBuilder)(nil)

// XMLBuilder serializa a nota no layout da NF-e. Monta somente o corpo
// (infNFe); assinatura digital e transmissão ficam fora deste módulo.
type XMLBuilder struct{}

// NewXMLBuilder cria o montador.
func NewXMLBuilder() *XMLBuilder {
	return &XMLBuilder{}
}

// Monta gera o []byte do documento NFe a partir da nota emitida.
func (b *XMLBuilder) Monta(nota *entity.NotaFiscal, empresa *entity.Empresa, pessoa *entity.Pessoa) ([]byte, error) {
	if nota == nil || empresa == nil || pessoa == nil {
		return nil, fmt.Errorf("nfe: faltam nota, empresa ou pessoa")
	}
	if nota.ChaveAcesso == "" {
		return nil, fmt.Errorf("nfe: nota %d sem chave de acesso", nota.Codigo)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("NFe")
	root.CreateAttr("xmlns", NsNFe)

	inf := root.CreateElement("infNFe")
	inf.CreateAttr("Id", "NFe"+nota.ChaveAcesso)
	inf.CreateAttr("versao", "4.00")

	// ide: identificação do documento
	ide := inf.CreateElement("ide")
	ide.CreateElement("cUF").SetText(strconv.Itoa(empresa.UF))
	ide.CreateElement("natOp").SetText(nota.NaturezaOperacao)
	ide.CreateElement("mod").SetText(strconv.Itoa(nota.Modelo))
	ide.CreateElement("serie").SetText(strconv.Itoa(nota.Serie))
	ide.CreateElement("nNF").SetText(strconv.FormatInt(nota.Numero, 10))
	if nota.DataEmissao != nil {
		ide.CreateElement("dhEmi").SetText(nota.DataEmissao.Format("2006-01-02T15:04:05-07:00"))
	}
	ide.CreateElement("tpNF").SetText(tipoNF(nota.Tipo))
	ide.CreateElement("tpAmb").SetText(strconv.Itoa(empresa.Ambiente))
	ide.CreateElement("cDV").SetText(strconv.Itoa(nota.DV))

	// emit: emitente
	emit := inf.CreateElement("emit")
	emit.CreateElement("CNPJ").SetText(somenteDigitos(empresa.CNPJ))
	emit.CreateElement("xNome").SetText(empresa.Nome)
	if empresa.IE != "" {
		emit.CreateElement("IE").SetText(empresa.IE)
	}

	// dest: destinatário/remetente
	dest := inf.CreateElement("dest")
	docPessoa := somenteDigitos(pessoa.CPFCNPJ)
	if len(docPessoa) > 11 {
		dest.CreateElement("CNPJ").SetText(docPessoa)
	} else if docPessoa != "" {
		dest.CreateElement("CPF").SetText(docPessoa)
	}
	dest.CreateElement("xNome").SetText(pessoa.Nome)

	// total/ICMSTot: agregados monetários
	if nota.Totais != nil {
		tot := inf.CreateElement("total").CreateElement("ICMSTot")
		tot.CreateElement("vProd").SetText(nota.Totais.ValorProdutos.StringFixed(2))
		tot.CreateElement("vDesc").SetText(nota.Totais.ValorDesconto.StringFixed(2))
		tot.CreateElement("vICMS").SetText(nota.Totais.ValorICMS.StringFixed(2))
		tot.CreateElement("vIPI").SetText(nota.Totais.ValorIPI.StringFixed(2))
		tot.CreateElement("vPIS").SetText(nota.Totais.ValorPIS.StringFixed(2))
		tot.CreateElement("vCOFINS").SetText(nota.Totais.ValorCOFINS.StringFixed(2))
		tot.CreateElement("vFrete").SetText(nota.Totais.ValorFrete.StringFixed(2))
		tot.CreateElement("vNF").SetText(nota.Totais.ValorTotal.StringFixed(2))
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func tipoNF(tipo string) string {
	if tipo == entity.NotaFiscalTipoEntrada {
		return "0"
	}
	return "1" // saída
}

func somenteDigitos(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
