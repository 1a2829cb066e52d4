package postgres

// nullIfEmpty devolve nil para string vazia, preservando NULL em colunas
// opcionais (a chave de acesso, por exemplo, fica NULL até a emissão).
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
