package pricing

import "errors"

var (
	// ErrUnknownOption возвращается, если id позиции отсутствует в каталоге
	ErrUnknownOption = errors.New("pricing: unknown option")

	// ErrUnsupportedForm возвращается для формы неизвестного типа
	ErrUnsupportedForm = errors.New("pricing: unsupported form")
)
