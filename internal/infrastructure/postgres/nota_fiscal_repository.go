package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var (
	_ repository.NotaFiscalRepository = (*NotaFiscalRepo)(nil)
	_ repository.TotaisRepository     = (*TotaisRepo)(nil)
)

// NotaFiscalRepo implementação de NotaFiscalRepository (usável com pool ou tx).
type NotaFiscalRepo struct {
	q Querier
}

// NewNotaFiscalRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewNotaFiscalRepository(q Querier) *NotaFiscalRepo {
	return &NotaFiscalRepo{q: q}
}

// Salva persiste a cabeceira da nota (fase de cadastro) e devolve o código.
func (r *NotaFiscalRepo) Salva(ctx context.Context, nota *entity.NotaFiscal) (int64, error) {
	query := `
		INSERT INTO nota_fiscal (serie, numero, modelo, chave_acesso, dv, natureza_operacao, tipo, pessoa_codigo, totais_codigo, data_cadastro, data_emissao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING codigo`
	var codigo int64
	err := r.q.QueryRow(ctx, query,
		nota.Serie, nota.Numero, nota.Modelo,
		nullIfEmpty(nota.ChaveAcesso), nota.DV,
		nota.NaturezaOperacao, nota.Tipo, nota.PessoaCodigo,
		nota.Totais.Codigo, nota.DataCadastro, nota.DataEmissao,
	).Scan(&codigo)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("número %d já usado na série %d: %w", nota.Numero, nota.Serie, err)
		}
		return 0, fmt.Errorf("insert nota fiscal: %w", err)
	}
	return codigo, nil
}

// Atualiza grava chave de acesso, DV e data de emissão (fase de emissão).
func (r *NotaFiscalRepo) Atualiza(ctx context.Context, nota *entity.NotaFiscal) error {
	query := `
		UPDATE nota_fiscal
		SET chave_acesso = $2,
		    dv           = $3,
		    data_emissao = $4
		WHERE codigo = $1`
	tag, err := r.q.Exec(ctx, query,
		nota.Codigo, nullIfEmpty(nota.ChaveAcesso), nota.DV, nota.DataEmissao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("chave de acesso já usada por outra nota: %w", err)
		}
		return fmt.Errorf("update nota fiscal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update nota fiscal: nota %d inexistente", nota.Codigo)
	}
	return nil
}

const colunasNota = `
	n.codigo, n.serie, n.numero, n.modelo, n.chave_acesso, n.dv,
	n.natureza_operacao, n.tipo, n.pessoa_codigo, n.data_cadastro, n.data_emissao,
	t.codigo, t.valor_produtos, t.valor_desconto, t.valor_icms, t.valor_ipi,
	t.valor_pis, t.valor_cofins, t.valor_frete, t.valor_total`

// Busca devolve a nota completa (com totais) ou nil se não existir.
func (r *NotaFiscalRepo) Busca(ctx context.Context, codigo int64) (*entity.NotaFiscal, error) {
	query := `
		SELECT ` + colunasNota + `
		FROM nota_fiscal n
		JOIN nota_fiscal_totais t ON t.codigo = n.totais_codigo
		WHERE n.codigo = $1`
	n, err := scanNota(r.q.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar nota fiscal: %w", err)
	}
	return n, nil
}

// Lista devolve as notas mais recentes primeiro.
func (r *NotaFiscalRepo) Lista(ctx context.Context) ([]*entity.NotaFiscal, error) {
	query := `
		SELECT ` + colunasNota + `
		FROM nota_fiscal n
		JOIN nota_fiscal_totais t ON t.codigo = n.totais_codigo
		ORDER BY n.codigo DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar notas fiscais: %w", err)
	}
	defer rows.Close()

	var notas []*entity.NotaFiscal
	for rows.Next() {
		n, err := scanNota(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nota fiscal: %w", err)
		}
		notas = append(notas, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar notas fiscais: %w", err)
	}
	return notas, nil
}

// TotalEmitidas conta as notas com chave de acesso atribuída.
func (r *NotaFiscalRepo) TotalEmitidas(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM nota_fiscal WHERE chave_acesso IS NOT NULL`
	var total int
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("contar notas emitidas: %w", err)
	}
	return total, nil
}

func scanNota(row pgx.Row) (*entity.NotaFiscal, error) {
	var n entity.NotaFiscal
	var t entity.NotaFiscalTotais
	var chave *string
	err := row.Scan(
		&n.Codigo, &n.Serie, &n.Numero, &n.Modelo, &chave, &n.DV,
		&n.NaturezaOperacao, &n.Tipo, &n.PessoaCodigo, &n.DataCadastro, &n.DataEmissao,
		&t.Codigo, &t.ValorProdutos, &t.ValorDesconto, &t.ValorICMS, &t.ValorIPI,
		&t.ValorPIS, &t.ValorCOFINS, &t.ValorFrete, &t.ValorTotal,
	)
	if err != nil {
		return nil, err
	}
	if chave != nil {
		n.ChaveAcesso = *chave
	}
	n.Totais = &t
	return &n, nil
}

// TotaisRepo implementação de TotaisRepository (usável com pool ou tx).
type TotaisRepo struct {
	q Querier
}

// NewTotaisRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTotaisRepository(q Querier) *TotaisRepo {
	return &TotaisRepo{q: q}
}

// Salva persiste o bloco de totais e devolve o código atribuído.
func (r *TotaisRepo) Salva(ctx context.Context, totais *entity.NotaFiscalTotais) (int64, error) {
	query := `
		INSERT INTO nota_fiscal_totais (valor_produtos, valor_desconto, valor_icms, valor_ipi, valor_pis, valor_cofins, valor_frete, valor_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING codigo`
	var codigo int64
	err := r.q.QueryRow(ctx, query,
		totais.ValorProdutos, totais.ValorDesconto, totais.ValorICMS, totais.ValorIPI,
		totais.ValorPIS, totais.ValorCOFINS, totais.ValorFrete, totais.ValorTotal,
	).Scan(&codigo)
	if err != nil {
		return 0, fmt.Errorf("insert totais da nota: %w", err)
	}
	return codigo, nil
}
