package handler

import (
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUUIDParam extracts and validates a UUID path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NewBadRequestError("Invalid " + name + " format")
	}
	return id, nil
}

// parseUUIDQuery extracts an optional UUID query parameter
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid " + name + " format")
	}
	return &id, nil
}

// bindPagination reads page/page_size query parameters with defaults
func bindPagination(c *gin.Context) pagination.PaginationParams {
	var params pagination.PaginationParams
	_ = c.ShouldBindQuery(&params)
	params.Validate()
	return params
}
