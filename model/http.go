package model

type ErrorResponse struct {
	Error string `json:"detail"`
}
