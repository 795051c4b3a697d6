package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicGreeter(t *testing.T) {
	t.Parallel()
	g := NewHeuristicGreeter()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"feminine ending", "Anna Kowalska", "Szanowna Pani Anna"},
		{"masculine", "Jan Kowalski", "Szanowny Panie Jan"},
		{"masculine exception Kuba", "Kuba Nowak", "Szanowny Panie Kuba"},
		{"masculine exception Barnaba", "Barnaba Wiśniewski", "Szanowny Panie Barnaba"},
		{"single name", "Maria", "Szanowna Pani Maria"},
		{"empty", "", "Szanowni Państwo"},
		{"whitespace only", "   ", "Szanowni Państwo"},
		{"case preserved", "AGNIESZKA Nowak", "Szanowna Pani AGNIESZKA"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, g.Greet(context.Background(), tt.in))
		})
	}
}
