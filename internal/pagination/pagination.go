// Package pagination computes the block of page links shown under a result
// list.
package pagination

import (
	"encoding/json"
	"errors"
	"math"
)

// WindowSize is how many page links one window holds.
const WindowSize = 10

var ErrInvalidPageSize = errors.New("items per page must be positive")

type Window struct {
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	StartPage   int  `json:"startPage"`
	EndPage     int  `json:"endPage"`
	HasPrev     bool `json:"hasPrev"`
	HasNext     bool `json:"hasNext"`
}

// Compute groups pages into consecutive blocks of WindowSize and returns the
// block holding currentPage (1-based).
//
// StartPage is derived from the block end before it is clamped to
// TotalPages and is not clamped below 1.
func Compute(totalItems, currentPage, itemsPerPage int) (Window, error) {
	if itemsPerPage <= 0 {
		return Window{}, ErrInvalidPageSize
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(itemsPerPage)))

	blockEnd := int(math.Ceil(float64(currentPage)/WindowSize)) * WindowSize
	startPage := blockEnd - (WindowSize - 1)

	endPage := blockEnd
	if endPage > totalPages {
		endPage = totalPages
	}

	return Window{
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		StartPage:   startPage,
		EndPage:     endPage,
		HasPrev:     startPage > 1,
		HasNext:     endPage < totalPages,
	}, nil
}

// Pages lists the page numbers of the window, empty when there is nothing to
// show.
func (w Window) Pages() []int {
	pages := []int{}
	for p := max(w.StartPage, 1); p <= w.EndPage; p++ {
		pages = append(pages, p)
	}
	return pages
}

// MarshalJSON renders the window together with its page numbers.
func (w Window) MarshalJSON() ([]byte, error) {
	type window Window
	return json.Marshal(struct {
		window
		Pages []int `json:"pages"`
	}{window(w), w.Pages()})
}

// Offset is the index of the first item on page for a list sliced
// itemsPerPage at a time. It saturates at math.MaxInt instead of overflowing.
func Offset(page, itemsPerPage int) int {
	if page < 1 || itemsPerPage <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/itemsPerPage {
		return math.MaxInt
	}
	return (page - 1) * itemsPerPage
}
