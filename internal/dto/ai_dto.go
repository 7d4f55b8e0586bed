package dto

type KeyStatusResponse struct {
	Configured bool `json:"configured"`
}

type SetKeyRequest struct {
	ApiKey string `json:"api_key"`
}
