package dto

// AjusteFilter filtro de listagem de ajustes. Quando Codigo está presente,
// o filtro de identidade tem precedência sobre qualquer outro predicado.
type AjusteFilter struct {
	Codigo *int64 `json:"codigo,omitempty"`
}

// VendaFilter filtro de busca de vendas, com a mesma precedência de
// identidade do filtro de ajustes.
type VendaFilter struct {
	Codigo *int64 `json:"codigo,omitempty"`
}
