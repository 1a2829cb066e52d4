// Package storage guarda o corpo serializado das notas no sistema de
// arquivos, endereçado pela chave de acesso.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/originmobi/pdv-fiscal/internal/application/notafiscal"
)

var _ notafiscal.DocumentStore = (*XMLStore)(nil)

// XMLStore grava cada documento em <dir>/<chave>.xml. O filesystem é
// injetado (afero) para os testes rodarem em memória.
type XMLStore struct {
	fs  afero.Fs
	dir string
}

// NewXMLStore constrói o armazém sobre o filesystem e diretório dados.
func NewXMLStore(fs afero.Fs, dir string) *XMLStore {
	return &XMLStore{fs: fs, dir: dir}
}

// Salva grava o conteúdo sob a chave, sobrescrevendo se já existir.
// Cria o diretório na primeira gravação.
func (s *XMLStore) Salva(chave, conteudo string) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("criar diretório %s: %w", s.dir, err)
	}
	path := s.caminho(chave)
	if err := afero.WriteFile(s.fs, path, []byte(conteudo), 0o644); err != nil {
		return fmt.Errorf("gravar documento %s: %w", path, err)
	}
	return nil
}

// Le devolve o conteúdo gravado sob a chave.
func (s *XMLStore) Le(chave string) (string, error) {
	b, err := afero.ReadFile(s.fs, s.caminho(chave))
	if err != nil {
		return "", fmt.Errorf("ler documento %s: %w", chave, err)
	}
	return string(b), nil
}

// Remove apaga o documento da chave. Chave inexistente não é erro.
func (s *XMLStore) Remove(chave string) error {
	err := s.fs.Remove(s.caminho(chave))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remover documento %s: %w", chave, err)
	}
	return nil
}

func (s *XMLStore) caminho(chave string) string {
	return filepath.Join(s.dir, chave+".xml")
}
