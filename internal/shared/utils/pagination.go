package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page describes one page of an in-memory list.
type Page struct {
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Start      int `json:"-"`
	End        int `json:"-"`
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }

// Paginate clamps page into range and computes slice bounds for total items.
func Paginate(total, page, size int) Page {
	if size < 1 {
		size = 1
	}
	pages := TotalPages(total, size)
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{Number: page, Size: size, Total: total, TotalPages: pages, Start: start, End: end}
}

// TotalPages calculates total pages for a given total count. An empty list has one page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// QueryPage reads the "page" query parameter, defaulting to 1.
func QueryPage(c *gin.Context) int {
	if val := c.Query("page"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return 1
}
