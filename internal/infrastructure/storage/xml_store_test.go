package storage

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLStoreSalvaELe(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewXMLStore(fs, "xmlNfe")

	chave := "35240811222333000181550010000000011000000018"
	require.NoError(t, store.Salva(chave, "<NFe/>"))

	conteudo, err := store.Le(chave)
	require.NoError(t, err)
	assert.Equal(t, "<NFe/>", conteudo)

	// arquivo no caminho esperado
	existe, err := afero.Exists(fs, "xmlNfe/"+chave+".xml")
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestXMLStoreSobrescreve(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewXMLStore(fs, "xmlNfe")

	require.NoError(t, store.Salva("chave", "v1"))
	require.NoError(t, store.Salva("chave", "v2"))

	conteudo, err := store.Le("chave")
	require.NoError(t, err)
	assert.Equal(t, "v2", conteudo)
}

func TestXMLStoreRemove(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewXMLStore(fs, "xmlNfe")

	require.NoError(t, store.Salva("chave", "<NFe/>"))
	require.NoError(t, store.Remove("chave"))

	existe, err := afero.Exists(fs, "xmlNfe/chave.xml")
	require.NoError(t, err)
	assert.False(t, existe)
}

func TestXMLStoreRemoveInexistenteNaoFalha(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewXMLStore(fs, "xmlNfe")

	assert.NoError(t, store.Remove("nunca-gravada"))
}
