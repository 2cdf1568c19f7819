// Package slug genera slugs URL-safe a partir de nombres con acentos y eñes,
// con el mismo resultado que producía el slugify del frontend de la tienda.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone a NFD y elimina las marcas diacríticas
// ("Pitaya pequeña" -> "Pitaya pequena").
var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make convierte un nombre en slug: minúsculas, sin acentos, y cualquier
// secuencia no alfanumérica colapsada a un solo guion.
func Make(name string) string {
	s, _, err := transform.String(stripAccents, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastDash := true // evita guion inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
