package paginator

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Paginate is a window over a list. Size 0 means no paging was requested.
type Paginate struct {
	From, Size, Page int
}

func New(c *gin.Context) Paginate {
	sizeStr := c.DefaultQuery("page_size", "0")
	pageStr := c.DefaultQuery("page", "1")

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 0 {
		size = 0
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	// pages past the addressable range are simply empty
	if size > 0 && page-1 > math.MaxInt/size {
		return Paginate{From: math.MaxInt, Size: size, Page: page}
	}

	return Paginate{
		From: (page - 1) * size,
		Size: size,
		Page: page,
	}
}

func (p Paginate) Enabled() bool {
	return p.Size > 0
}

// Apply returns the page of items selected by p.
func Apply[T any](p Paginate, items []T) []T {
	if !p.Enabled() {
		return items
	}
	if p.From < 0 || p.From >= len(items) {
		return []T{}
	}

	end := p.From + p.Size
	if end > len(items) || end < p.From {
		end = len(items)
	}
	return items[p.From:end]
}
