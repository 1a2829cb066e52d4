package venda

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/originmobi/pdv-fiscal/internal/application/dto"
	"github.com/originmobi/pdv-fiscal/internal/domain"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// RespostaOk é a confirmação das operações de item sobre venda aberta.
const RespostaOk = "ok"

// VendaUseCase mantém o documento de venda: abertura, itens enquanto
// ABERTA e consultas. O fechamento financeiro (caixa, recebíveis, cartão)
// é colaborador externo e não entra aqui.
type VendaUseCase struct {
	vendas repository.VendaRepository
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(vendas repository.VendaRepository) *VendaUseCase {
	return &VendaUseCase{vendas: vendas}
}

// Abre cria a venda quando ela ainda não tem código: situação ABERTA,
// valor de produtos zerado, data de cadastro e usuário explícito. Quando a
// venda já existe, apenas contraparte e observação são atualizadas.
// Devolve o código da venda.
func (uc *VendaUseCase) Abre(ctx context.Context, venda *entity.Venda, usuario string) (int64, error) {
	if venda == nil {
		return 0, domain.ErrEntradaInvalida
	}
	if venda.Codigo != 0 {
		if err := uc.vendas.AtualizaDados(ctx, venda.PessoaCodigo, venda.Observacao, venda.Codigo); err != nil {
			return 0, err
		}
		return venda.Codigo, nil
	}

	if usuario == "" {
		return 0, domain.ErrEntradaInvalida
	}
	venda.Situacao = entity.VendaSituacaoAberta
	venda.ValorProdutos = decimal.Zero
	venda.DataCadastro = time.Now()
	venda.Usuario = usuario

	codigo, err := uc.vendas.Salva(ctx, venda)
	if err != nil {
		return 0, err
	}
	venda.Codigo = codigo
	return codigo, nil
}

// AddProduto inclui um item na venda se ela estiver ABERTA; venda fechada
// rejeita a operação.
func (uc *VendaUseCase) AddProduto(ctx context.Context, vendaCodigo, produtoCodigo int64, valorBalanca decimal.Decimal) (string, error) {
	situacao, err := uc.vendas.VerificaSituacao(ctx, vendaCodigo)
	if err != nil {
		return "", err
	}
	if situacao != entity.VendaSituacaoAberta {
		return "", domain.ErrVendaFechada
	}
	item := &entity.VendaProduto{
		VendaCodigo:   vendaCodigo,
		ProdutoCodigo: produtoCodigo,
		ValorBalanca:  valorBalanca,
	}
	if _, err := uc.vendas.SalvaProduto(ctx, item); err != nil {
		return "", err
	}
	return RespostaOk, nil
}

// RemoveProduto retira um item da venda se ela estiver ABERTA.
func (uc *VendaUseCase) RemoveProduto(ctx context.Context, codigoItem, vendaCodigo int64) (string, error) {
	venda, err := uc.vendas.Busca(ctx, vendaCodigo)
	if err != nil {
		return "", err
	}
	if venda == nil {
		return "", domain.ErrVendaNaoEncontrada
	}
	if !venda.Aberta() {
		return "", domain.ErrVendaFechada
	}
	if err := uc.vendas.RemoveProduto(ctx, codigoItem); err != nil {
		return "", err
	}
	return RespostaOk, nil
}

// Busca pagina as vendas. O filtro de identidade, quando presente, tem
// precedência: devolve só a venda com aquele código, ignorando a situação.
// Sem filtro, lista pela situação pedida (qualquer valor diferente de
// ABERTA consulta as fechadas).
func (uc *VendaUseCase) Busca(ctx context.Context, filtro dto.VendaFilter, situacao string, page dto.PageRequest) ([]*entity.Venda, error) {
	page.DefaultPage()
	if filtro.Codigo != nil {
		venda, err := uc.vendas.Busca(ctx, *filtro.Codigo)
		if err != nil {
			return nil, err
		}
		if venda == nil {
			return []*entity.Venda{}, nil
		}
		return []*entity.Venda{venda}, nil
	}

	alvo := entity.VendaSituacaoFechada
	if situacao == entity.VendaSituacaoAberta {
		alvo = entity.VendaSituacaoAberta
	}
	return uc.vendas.ListaPorSituacao(ctx, alvo, page.Limit, page.Offset)
}

// Lista devolve todas as vendas.
func (uc *VendaUseCase) Lista(ctx context.Context) ([]*entity.Venda, error) {
	return uc.vendas.Lista(ctx)
}

// QtdAbertas devolve o total de vendas em aberto.
func (uc *VendaUseCase) QtdAbertas(ctx context.Context) (int, error) {
	return uc.vendas.QtdAbertas(ctx)
}
