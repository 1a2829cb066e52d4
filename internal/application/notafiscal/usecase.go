package notafiscal

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/originmobi/pdv-fiscal/internal/domain"
	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
	"github.com/originmobi/pdv-fiscal/pkg/nfe"
)

// NotaFiscalUseCase orquestra a nota fiscal em duas fases: Cadastra reserva
// número na série e persiste o registro sem corpo; Emite fecha a chave de
// acesso, serializa o corpo e o grava no armazém de documentos.
type NotaFiscalUseCase struct {
	notas       repository.NotaFiscalRepository
	totais      repository.TotaisRepository
	series      repository.SerieRepository
	pessoas     repository.PessoaRepository
	empresas    repository.EmpresaRepository
	corpo       CorpoBuilder
	documentos  DocumentStore
	tipoEmissao int
}

// NewNotaFiscalUseCase constrói o caso de uso. tipoEmissao é a forma de
// emissão usada na chave de acesso (1 = normal).
func NewNotaFiscalUseCase(
	notas repository.NotaFiscalRepository,
	totais repository.TotaisRepository,
	series repository.SerieRepository,
	pessoas repository.PessoaRepository,
	empresas repository.EmpresaRepository,
	corpo CorpoBuilder,
	documentos DocumentStore,
	tipoEmissao int,
) *NotaFiscalUseCase {
	return &NotaFiscalUseCase{
		notas:       notas,
		totais:      totais,
		series:      series,
		pessoas:     pessoas,
		empresas:    empresas,
		corpo:       corpo,
		documentos:  documentos,
		tipoEmissao: tipoEmissao,
	}
}

// Cadastra cria a nota sem corpo: exige empresa fiscal configurada, resolve
// a contraparte, aloca o próximo número da série da empresa, grava o bloco
// de totais zerado e persiste a nota. Devolve o código atribuído como texto
// de exibição.
func (uc *NotaFiscalUseCase) Cadastra(ctx context.Context, pessoaCodigo int64, naturezaOperacao, tipo string) (string, error) {
	if tipo != entity.NotaFiscalTipoEntrada && tipo != entity.NotaFiscalTipoSaida {
		return "", domain.ErrEntradaInvalida
	}

	empresa, err := uc.empresas.Ativa(ctx)
	if err != nil {
		return "", err
	}
	if empresa == nil {
		return "", domain.ErrEmpresaNaoConfigurada
	}

	pessoa, err := uc.pessoas.Busca(ctx, pessoaCodigo)
	if err != nil {
		return "", err
	}
	if pessoa == nil {
		return "", domain.ErrPessoaNaoEncontrada
	}

	numero, err := uc.series.ProximoNumero(ctx, empresa.Serie)
	if err != nil {
		return "", fmt.Errorf("alocar número da série %d: %w", empresa.Serie, err)
	}

	totais := entity.TotaisZerados()
	codigoTotais, err := uc.totais.Salva(ctx, totais)
	if err != nil {
		return "", fmt.Errorf("gravar totais: %w", err)
	}
	totais.Codigo = codigoTotais

	nota := &entity.NotaFiscal{
		Serie:            empresa.Serie,
		Numero:           numero,
		Modelo:           55,
		NaturezaOperacao: naturezaOperacao,
		Tipo:             tipo,
		PessoaCodigo:     pessoaCodigo,
		Totais:           totais,
		DataCadastro:     time.Now(),
	}
	codigo, err := uc.notas.Salva(ctx, nota)
	if err != nil {
		return "", fmt.Errorf("gravar nota fiscal: %w", err)
	}
	nota.Codigo = codigo
	return strconv.FormatInt(codigo, 10), nil
}

// Emite fecha a emissão da nota: monta a chave de acesso caso ainda não
// atribuída (uma chave atribuída nunca é trocada), persiste o registro,
// serializa o corpo do documento e o grava no armazém endereçado pela chave.
func (uc *NotaFiscalUseCase) Emite(ctx context.Context, nota *entity.NotaFiscal) error {
	if nota == nil {
		return domain.ErrEntradaInvalida
	}

	empresa, err := uc.empresas.Ativa(ctx)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrEmpresaNaoConfigurada
	}

	if !nota.Emitida() {
		codigo, err := codigoNumerico()
		if err != nil {
			return fmt.Errorf("gerar código numérico: %w", err)
		}
		agora := time.Now()
		chave, err := nfe.ChaveAcesso(nfe.ChaveParams{
			UF:          empresa.UF,
			Emissao:     agora,
			CNPJ:        empresa.CNPJ,
			Modelo:      nota.Modelo,
			Serie:       nota.Serie,
			Numero:      nota.Numero,
			TipoEmissao: uc.tipoEmissao,
			Codigo:      codigo,
		})
		if err != nil {
			return fmt.Errorf("montar chave de acesso: %w", err)
		}
		nota.ChaveAcesso = chave
		nota.DV = int(chave[nfe.TamanhoChave-1] - '0')
		nota.DataEmissao = &agora
	}

	if err := uc.notas.Atualiza(ctx, nota); err != nil {
		return fmt.Errorf("gravar nota fiscal: %w", err)
	}

	pessoa, err := uc.pessoas.Busca(ctx, nota.PessoaCodigo)
	if err != nil {
		return err
	}
	if pessoa == nil {
		return domain.ErrPessoaNaoEncontrada
	}

	corpo, err := uc.corpo.Monta(nota, empresa, pessoa)
	if err != nil {
		return fmt.Errorf("serializar corpo da nota: %w", err)
	}
	if err := uc.documentos.Salva(nota.ChaveAcesso, string(corpo)); err != nil {
		return fmt.Errorf("gravar documento %s: %w", nota.ChaveAcesso, err)
	}
	return nil
}

// Busca devolve a nota pelo código.
func (uc *NotaFiscalUseCase) Busca(ctx context.Context, codigo int64) (*entity.NotaFiscal, error) {
	return uc.notas.Busca(ctx, codigo)
}

// Lista devolve todas as notas.
func (uc *NotaFiscalUseCase) Lista(ctx context.Context) ([]*entity.NotaFiscal, error) {
	return uc.notas.Lista(ctx)
}

// TotalEmitidas devolve o total de notas com chave de acesso atribuída.
func (uc *NotaFiscalUseCase) TotalEmitidas(ctx context.Context) (int, error) {
	return uc.notas.TotalEmitidas(ctx)
}

// codigoNumerico sorteia o cNF de 8 dígitos que compõe a chave de acesso.
func codigoNumerico() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
