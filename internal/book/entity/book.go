package entity

type Book struct {
	ID       int64
	Name     string
	Price    float64
	Category BookCategory
}
