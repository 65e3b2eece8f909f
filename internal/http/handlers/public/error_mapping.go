package public

import (
	"errors"

	handlershared "github.com/artisan-market/internal/http/handlers/shared"
	"github.com/artisan-market/internal/http/response"
	"github.com/artisan-market/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	var stockErr *service.InsufficientStockError
	if errors.As(err, &stockErr) {
		respondError(c, response.CodeBadRequest, stockErr.Error(), nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "Cart is empty"},
	{target: service.ErrInvalidPaymentMethod, code: response.CodeBadRequest, msg: "Unsupported payment method"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "Product not found"},
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "Failed to place order")
}
