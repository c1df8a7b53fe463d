package counter

// Counter ограниченный счетчик (взрослые, дети, гости, количество позиций)
// Значение всегда в пределах [min, max]; тип передается по значению
type Counter struct {
	value int
	min   int
	max   int
}

// New создает счетчик; value приводится к границам, min > max меняются местами
func New(value, min, max int) Counter {
	if min > max {
		min, max = max, min
	}
	c := Counter{min: min, max: max}
	c.value = c.Clamp(value)
	return c
}

// Increment возвращает счетчик, увеличенный на 1 (не выше max)
func (c Counter) Increment() Counter {
	if c.value < c.max {
		c.value++
	}
	return c
}

// Decrement возвращает счетчик, уменьшенный на 1 (не ниже min)
func (c Counter) Decrement() Counter {
	if c.value > c.min {
		c.value--
	}
	return c
}

// Value текущее значение
func (c Counter) Value() int { return c.value }

// Min нижняя граница
func (c Counter) Min() int { return c.min }

// Max верхняя граница
func (c Counter) Max() int { return c.max }

// CanIncrement возвращает true, если значение можно увеличить
func (c Counter) CanIncrement() bool { return c.value < c.max }

// CanDecrement возвращает true, если значение можно уменьшить
func (c Counter) CanDecrement() bool { return c.value > c.min }

// Contains проверяет, что v в пределах границ
func (c Counter) Contains(v int) bool {
	return v >= c.min && v <= c.max
}

// Clamp приводит v к границам счетчика
func (c Counter) Clamp(v int) int {
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}
