// Package lineitem reglas del selector de cantidad de una línea del carrito.
package lineitem

import "strconv"

// MinQuantity cantidad mínima de una línea.
const MinQuantity = 1

// ParseQuantity interpreta lo que el cliente escribió en el campo de cantidad.
// Toma el entero inicial del texto; si no hay número (o es 0) usa 1. Un valor menor a 1
// se ignora y se conserva current.
func ParseQuantity(current int, raw string) int {
	n, ok := leadingInt(raw)
	if !ok || n == 0 {
		n = MinQuantity
	}
	if n >= MinQuantity {
		return n
	}
	return normalize(current)
}

// Increment suma una unidad.
func Increment(q int) int {
	return normalize(q) + 1
}

// Decrement resta una unidad sin bajar de MinQuantity.
func Decrement(q int) int {
	if q > MinQuantity {
		return q - 1
	}
	return MinQuantity
}

// IsValid indica si la cantidad puede enviarse al carrito.
func IsValid(q int) bool {
	return q >= MinQuantity
}

func normalize(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	return q
}

// leadingInt extrae el entero con signo al inicio de s, ignorando espacios iniciales.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
