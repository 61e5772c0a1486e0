package hotmart

type salesResponse struct {
	Sales []sale `json:"sales"`
}

type sale struct {
	Transaction string `json:"transaction"`
	Buyer       struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"buyer"`
	Product struct {
		Name string `json:"name"`
	} `json:"product"`
	Price struct {
		Value float64 `json:"value"`
	} `json:"price"`
	Commission struct {
		Value float64 `json:"value"`
	} `json:"commission"`
}
