package domain

import "sort"

// FieldErrors ошибки валидации: поле -> сообщение
// Пустая карта означает валидную форму
type FieldErrors map[string]string

// Add добавляет ошибку поля; первая ошибка поля сохраняется
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

// Has возвращает true, если у поля есть ошибка
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Empty возвращает true, если ошибок нет
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Fields возвращает отсортированный список полей с ошибками
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
