package catalog

import "errors"

var (
	// ErrReadCatalog возвращается при ошибке чтения файла каталога
	ErrReadCatalog = errors.New("catalog: failed to read catalog file")

	// ErrInvalidCatalog возвращается при некорректных данных каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
