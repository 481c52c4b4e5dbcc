package norm

import (
	"strconv"
	"strings"
)

// символические/текстовые маркеры бесконечности: асимптоты кривых
// не представимы конечным числом и в таблицы не пишутся
var infTokens = map[string]struct{}{
	"∞": {}, "+∞": {}, "-∞": {},
	"inf": {}, "+inf": {}, "-inf": {},
	"infinity": {}, "+infinity": {}, "-infinity": {},
}

// Float безопасно приводит текст к числу. Никогда не паникует и не
// возвращает ошибку: всё нечисловое (пустая строка, NaN, бесконечности,
// мусор) схлопывается в nil — "значение отсутствует".
func Float(value string) *float64 {
	text := strings.TrimSpace(value)
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	if lower == "nan" {
		return nil
	}
	if _, inf := infTokens[lower]; inf {
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	// strconv принимает "Inf"/"Infinity" сам по себе — отсекли выше,
	// но на всякий случай NaN от экзотических форм тоже не пропускаем
	if f != f {
		return nil
	}
	return &f
}

// Bool — трёхзначный парс флага: true/1/yes -> true, false/0/no -> false,
// всё прочее -> nil (не задано).
func Bool(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		v := true
		return &v
	case "false", "0", "no":
		v := false
		return &v
	}
	return nil
}
