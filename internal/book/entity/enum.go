package entity

type QueryMode string

const (
	QueryModeAuthor   QueryMode = "author"
	QueryModeCustomer QueryMode = "customer"
)

func (QueryMode) Values() []string {
	return []string{string(QueryModeAuthor), string(QueryModeCustomer)}
}

type BookCategory string

const (
	BookCategoryComics  BookCategory = "comics"
	BookCategoryCooking BookCategory = "cooking"
)

func (BookCategory) Values() []string {
	return []string{string(BookCategoryComics), string(BookCategoryCooking)}
}
