package services

import "triviaapp/models"

// DefaultQuestionsPerPage is the fixed page size for question listings.
const DefaultQuestionsPerPage = 10

// Page is one bounded slice of an ordered result set. Total counts the full
// set before slicing, not the returned items.
type Page struct {
	Items []models.Question
	Total int
}

// Paginate slices items into the given page. A page number below 1 is treated
// as page 1; a page beyond the available range yields an empty item list with
// Total unchanged.
func Paginate(items []models.Question, page, size int) Page {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultQuestionsPerPage
	}

	total := len(items)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	// Copy into a fresh slice so an empty page still encodes as [] and the
	// caller cannot alias the input.
	return Page{Items: append([]models.Question{}, items[start:end]...), Total: total}
}
