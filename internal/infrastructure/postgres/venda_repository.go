package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/originmobi/pdv-fiscal/internal/domain/entity"
	"github.com/originmobi/pdv-fiscal/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

const colunasVenda = `codigo, situacao, pessoa_codigo, usuario, observacao, valor_produtos, data_cadastro`

// Salva persiste uma venda nova e devolve o código atribuído.
func (r *VendaRepo) Salva(ctx context.Context, venda *entity.Venda) (int64, error) {
	query := `
		INSERT INTO venda (situacao, pessoa_codigo, usuario, observacao, valor_produtos, data_cadastro)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING codigo`
	var codigo int64
	err := r.q.QueryRow(ctx, query,
		venda.Situacao, venda.PessoaCodigo, venda.Usuario,
		venda.Observacao, venda.ValorProdutos, venda.DataCadastro,
	).Scan(&codigo)
	if err != nil {
		return 0, fmt.Errorf("insert venda: %w", err)
	}
	return codigo, nil
}

// AtualizaDados grava contraparte e observação de uma venda existente.
func (r *VendaRepo) AtualizaDados(ctx context.Context, pessoaCodigo int64, observacao string, codigo int64) error {
	query := `UPDATE venda SET pessoa_codigo = $1, observacao = $2 WHERE codigo = $3`
	tag, err := r.q.Exec(ctx, query, pessoaCodigo, observacao, codigo)
	if err != nil {
		return fmt.Errorf("update venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update venda: venda %d inexistente", codigo)
	}
	return nil
}

// Busca devolve a venda ou nil se não existir.
func (r *VendaRepo) Busca(ctx context.Context, codigo int64) (*entity.Venda, error) {
	query := `SELECT ` + colunasVenda + ` FROM venda WHERE codigo = $1`
	v, err := scanVenda(r.q.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar venda: %w", err)
	}
	return v, nil
}

// Lista devolve as vendas mais recentes primeiro.
func (r *VendaRepo) Lista(ctx context.Context) ([]*entity.Venda, error) {
	query := `SELECT ` + colunasVenda + ` FROM venda ORDER BY codigo DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar vendas: %w", err)
	}
	defer rows.Close()
	return collectVendas(rows)
}

// ListaPorSituacao pagina as vendas na situação dada.
func (r *VendaRepo) ListaPorSituacao(ctx context.Context, situacao string, limit, offset int) ([]*entity.Venda, error) {
	query := `
		SELECT ` + colunasVenda + `
		FROM venda
		WHERE situacao = $1
		ORDER BY codigo DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, situacao, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar vendas por situação: %w", err)
	}
	defer rows.Close()
	return collectVendas(rows)
}

// VerificaSituacao devolve a situação atual da venda.
func (r *VendaRepo) VerificaSituacao(ctx context.Context, codigo int64) (string, error) {
	query := `SELECT situacao FROM venda WHERE codigo = $1`
	var situacao string
	err := r.q.QueryRow(ctx, query, codigo).Scan(&situacao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("verificar situação: venda %d inexistente", codigo)
		}
		return "", fmt.Errorf("verificar situação da venda: %w", err)
	}
	return situacao, nil
}

// QtdAbertas conta as vendas em aberto.
func (r *VendaRepo) QtdAbertas(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM venda WHERE situacao = $1`
	var qtd int
	if err := r.q.QueryRow(ctx, query, entity.VendaSituacaoAberta).Scan(&qtd); err != nil {
		return 0, fmt.Errorf("contar vendas abertas: %w", err)
	}
	return qtd, nil
}

// SalvaProduto persiste um item da venda e devolve o código do item.
func (r *VendaRepo) SalvaProduto(ctx context.Context, item *entity.VendaProduto) (int64, error) {
	query := `
		INSERT INTO venda_produto (venda_codigo, produto_codigo, valor_balanca)
		VALUES ($1, $2, $3)
		RETURNING codigo`
	var codigo int64
	err := r.q.QueryRow(ctx, query, item.VendaCodigo, item.ProdutoCodigo, item.ValorBalanca).Scan(&codigo)
	if err != nil {
		return 0, fmt.Errorf("insert item de venda: %w", err)
	}
	return codigo, nil
}

// RemoveProduto apaga um item da venda.
func (r *VendaRepo) RemoveProduto(ctx context.Context, codigoItem int64) error {
	query := `DELETE FROM venda_produto WHERE codigo = $1`
	if _, err := r.q.Exec(ctx, query, codigoItem); err != nil {
		return fmt.Errorf("remover item de venda: %w", err)
	}
	return nil
}

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	err := row.Scan(
		&v.Codigo, &v.Situacao, &v.PessoaCodigo, &v.Usuario,
		&v.Observacao, &v.ValorProdutos, &v.DataCadastro,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVendas(rows pgx.Rows) ([]*entity.Venda, error) {
	var vendas []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		vendas = append(vendas, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listar vendas: %w", err)
	}
	return vendas, nil
}
