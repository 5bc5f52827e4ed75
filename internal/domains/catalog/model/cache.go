package model

import "fmt"

// Cache keys for catalog reads. The rental domain invalidates these too,
// since rent/return mutate the copy count.
const AllBooksCacheKey = "books:all"

func BookCacheKey(isbn string) string {
	return fmt.Sprintf("book:%s", isbn)
}
