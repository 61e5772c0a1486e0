package monetizze

type transactionsResponse struct {
	Transactions []transaction `json:"transactions"`
}

type transaction struct {
	ID       string `json:"id"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Product struct {
		Name string `json:"name"`
	} `json:"product"`
	Price           float64 `json:"price"`
	CommissionValue float64 `json:"commission_value"`
}
