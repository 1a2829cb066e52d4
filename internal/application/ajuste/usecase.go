package ajuste

import (
	"context"
	"fmt"
	"time"

	"github.com/originmobi/pdv-fiscal/internal/application/dto"
	"github.com/originmobi/pdv-fiscal/internal/domain"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

// MensagemProcessado é a confirmação devolvida quando o ajuste é aplicado.
const MensagemProcessado = "Ajuste realizado com sucesso"

// AjusteUseCase orquestra o documento de ajuste de estoque: criação,
// manutenção de itens enquanto APROCESSAR, processamento (transição única
// APROCESSAR -> PROCESSADO) e remoção.
type AjusteUseCase struct {
	txRunner TxRunner
	ajustes  repository.AjusteRepository
	estoque  EstoqueAjustador
}

// NewAjusteUseCase constrói o caso de uso.
func NewAjusteUseCase(txRunner TxRunner, ajustes repository.AjusteRepository, estoque EstoqueAjustador) *AjusteUseCase {
	return &AjusteUseCase{txRunner: txRunner, ajustes: ajustes, estoque: estoque}
}

// Novo cria um ajuste em APROCESSAR vinculado ao usuário informado e devolve
// o código atribuído. O usuário chega por parâmetro; não há leitura de
// contexto ambiente de autenticação.
func (uc *AjusteUseCase) Novo(ctx context.Context, usuario string) (int64, error) {
	if usuario == "" {
		return 0, domain.ErrEntradaInvalida
	}
	ajuste := &entity.Ajuste{
		Status:       entity.AjusteStatusAProcessar,
		Usuario:      usuario,
		DataCadastro: time.Now(),
	}
	return uc.ajustes.Salva(ctx, ajuste)
}

// AdicionaProduto inclui um item (produto, delta assinado) em um ajuste
// ainda não processado e devolve o código do item.
func (uc *AjusteUseCase) AdicionaProduto(ctx context.Context, codigoAjuste, produtoCodigo int64, qtdAlteracao int) (int64, error) {
	ajuste, err := uc.ajustes.Busca(ctx, codigoAjuste)
	if err != nil {
		return 0, err
	}
	if ajuste == nil {
		return 0, domain.ErrAjusteNaoEncontrado
	}
	if ajuste.Processado() {
		return 0, domain.ErrAjusteProcessado
	}
	item := &entity.AjusteProduto{
		AjusteCodigo:  codigoAjuste,
		ProdutoCodigo: produtoCodigo,
		QtdAlteracao:  qtdAlteracao,
	}
	return uc.ajustes.AdicionaProduto(ctx, item)
}

// RemoveProduto retira um item de um ajuste ainda não processado.
func (uc *AjusteUseCase) RemoveProduto(ctx context.Context, codigoAjuste, codigoItem int64) error {
	ajuste, err := uc.ajustes.Busca(ctx, codigoAjuste)
	if err != nil {
		return err
	}
	if ajuste == nil {
		return domain.ErrAjusteNaoEncontrado
	}
	if ajuste.Processado() {
		return domain.ErrAjusteProcessado
	}
	return uc.ajustes.RemoveProduto(ctx, codigoItem)
}

// Processar aplica o ajuste ao estoque. A direção de cada item vem do sinal
// do delta: positivo entra, negativo sai, sempre com a magnitude absoluta.
// Delta zero é no-op deliberado — não gera movimentação. Itens e transição
// de status são gravados em uma única transação; qualquer falha desfaz tudo.
func (uc *AjusteUseCase) Processar(ctx context.Context, codigo int64, observacao string) (string, error) {
	err := uc.txRunner.RunAjuste(ctx, func(
		ajusteRepo repository.AjusteRepository,
		produtoRepo repository.ProdutoRepository,
		movRepo repository.MovimentoEstoqueRepository,
	) error {
		ajuste, err := ajusteRepo.Busca(ctx, codigo)
		if err != nil {
			return err
		}
		if ajuste == nil {
			return domain.ErrAjusteNaoEncontrado
		}
		if ajuste.Processado() {
			return domain.ErrAjusteProcessado
		}

		agora := time.Now()
		origem := fmt.Sprintf("Ajuste de estoque %d", codigo)
		for _, item := range ajuste.Produtos {
			delta := item.QtdAlteracao
			if delta == 0 {
				continue
			}
			direcao := entity.EntradaSaidaEntrada
			qtd := delta
			if delta < 0 {
				direcao = entity.EntradaSaidaSaida
				qtd = -delta
			}
			if err := uc.estoque.AjustaEstoqueTx(ctx, produtoRepo, movRepo, item.ProdutoCodigo, qtd, direcao, origem, agora); err != nil {
				return err
			}
		}

		ajuste.Status = entity.AjusteStatusProcessado
		ajuste.Observacao = observacao
		return ajusteRepo.Atualiza(ctx, ajuste)
	})
	if err != nil {
		return "", err
	}
	return MensagemProcessado, nil
}

// Remover apaga um ajuste ainda não processado. Um ajuste PROCESSADO é
// definitivo e não pode ser removido; nenhum estoque é tocado na remoção
// (nada foi aplicado para um ajuste em APROCESSAR).
func (uc *AjusteUseCase) Remover(ctx context.Context, ajuste *entity.Ajuste) error {
	if ajuste == nil {
		return domain.ErrEntradaInvalida
	}
	if ajuste.Processado() {
		return domain.ErrAjusteProcessado
	}
	return uc.ajustes.Remove(ctx, ajuste.Codigo)
}

// Busca devolve o ajuste pelo código.
func (uc *AjusteUseCase) Busca(ctx context.Context, codigo int64) (*entity.Ajuste, error) {
	return uc.ajustes.Busca(ctx, codigo)
}

// Lista pagina os ajustes; o filtro de identidade, quando presente, tem
// precedência sobre qualquer outro predicado.
func (uc *AjusteUseCase) Lista(ctx context.Context, page dto.PageRequest, filtro dto.AjusteFilter) ([]*entity.Ajuste, error) {
	page.DefaultPage()
	return uc.ajustes.Lista(ctx, filtro.Codigo, page.Limit, page.Offset)
}
