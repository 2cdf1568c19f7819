package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecolosur/catalogo-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Albahaca", "albahaca"},
		{"Pitaya pequeña/grande", "pitaya-pequena-grande"},
		{"Limon Tahití", "limon-tahiti"},
		{"Tubérculos y raíces", "tuberculos-y-raices"},
		{"Aloe vera (gel)", "aloe-vera-gel"},
		{"Espinaca hoja gd", "espinaca-hoja-gd"},
		{"  Mermelada  de   mora  ", "mermelada-de-mora"},
		{"4 onz", "4-onz"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slug.Make(c.name), "slug de %q", c.name)
	}
}
