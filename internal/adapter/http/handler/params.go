package handler

import (
	"strconv"
	"time"

	"coin-ledger/internal/adapter/http/dto"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"
	"coin-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultPageSize = 20

// pagination reads page and page_size, clamping page_size to maxSize.
func pagination(c *gin.Context, maxSize int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

// bindJSON binds and sanitizes the body, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

// timeQuery parses an optional RFC 3339 or YYYY-MM-DD query value.
func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, apperror.Validation(name + " must be RFC 3339 or YYYY-MM-DD")
	}
	return &t, nil
}

// recordID parses the :id path parameter, answering 400 when it is not a UUID.
func recordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// metered pairs a metered action's result with the coins it cost.
func metered(result interface{}, charge *ports.MeteredResult) dto.MeteredResponse {
	return dto.MeteredResponse{
		Result:       result,
		CoinsCharged: charge.Cost,
		Balance:      charge.Balance,
	}
}
