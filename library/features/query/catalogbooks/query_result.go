package catalogbooks

import (
	"github.com/schoollibrary/lendingengine/library/shared/core"
)

// CatalogBooks represents the query result, books in the order they were catalogued.
type CatalogBooks struct {
	Books []core.Book
	Count int
}
