package affiliate

// SaleEvent é o formato comum que os clients das plataformas devolvem para
// a reconciliação. TransactionID é a chave de dedup do lado da plataforma —
// o store NÃO deduplica por ele (ver DESIGN.md).
type SaleEvent struct {
	TransactionID string
	BuyerEmail    string
	Product       string
	Amount        float64
	Commission    float64
}
