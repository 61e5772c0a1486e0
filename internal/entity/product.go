package entity

const (
	ProdutoMarketing    = "produto1" // curso de marketing digital
	ProdutoInvestimento = "produto2" // curso de investimentos
)

// Product liga um identificador de produto aos seus links de afiliado.
// Quando há mais de um link, o compositor escolhe um ao acaso.
type Product struct {
	ID             string
	Label          string
	AffiliateLinks []string
}
