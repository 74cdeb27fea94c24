package query

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const DefaultPageSize = 50
const MaxPageSize = 200

type Pagination struct {
	Page     int
	PageSize int
	Order    string
}

func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func GetPaginationFromQuery(reqCtx *gin.Context) (*Pagination, error) {
	pageStr := reqCtx.DefaultQuery("page", "1")
	sizeStr := reqCtx.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize))
	order := reqCtx.DefaultQuery("order", "desc")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return nil, fmt.Errorf("invalid page number")
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 || size > MaxPageSize {
		return nil, fmt.Errorf("invalid page size")
	}

	if order != "asc" && order != "desc" {
		return nil, fmt.Errorf("invalid order")
	}

	return &Pagination{
		Page:     page,
		PageSize: size,
		Order:    order,
	}, nil
}
