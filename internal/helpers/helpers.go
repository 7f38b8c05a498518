package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

const (
	ClaimEarnerID = "earner_id"
	ClaimOperator = "operator"
)

// GetEarnerID - извлекает идентификатор держателя баллов из контекста JWT токена
func GetEarnerID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	earnerID, ok := claims[ClaimEarnerID].(string)
	if !ok || earnerID == "" {
		logger.Warn("Undefined earner from token")
		return "", fmt.Errorf("undefined earner")
	}
	return earnerID, nil
}

// IsOperator - проверяет, что токен выдан оператору
func IsOperator(context context.Context) bool {
	_, claims, _ := jwtauth.FromContext(context)
	operator, ok := claims[ClaimOperator].(bool)
	return ok && operator
}
