package responses

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error,omitempty"`
}

type GeneralResponse[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
}

const ResponseCodeOk = "000000"
