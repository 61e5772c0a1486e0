package twilio

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`

	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}
