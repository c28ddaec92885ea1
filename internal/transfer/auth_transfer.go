package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	Subject string `json:"sub"`
	jwt.RegisteredClaims
}

type TokenRequest struct {
	OperatorKey string `json:"operator_key"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
