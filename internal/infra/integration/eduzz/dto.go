package eduzz

type salesResponse struct {
	Data []sale `json:"data"`
}

type sale struct {
	SaleID   string `json:"sale_id"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Product struct {
		Name string `json:"name"`
	} `json:"product"`
	Amount     float64 `json:"amount"`
	Commission float64 `json:"commission"`
}
