package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTaxID(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "formatted phone", phone: "(11) 98765-4321", want: "11987654321"},
		{name: "plain digits", phone: "11987654321", want: "11987654321"},
		{name: "international prefix", phone: "+55 11 98765-4321", want: "5511987654321"},
		{name: "no digits", phone: "sem numero", want: ""},
		{name: "empty", phone: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTaxID(tt.phone))
		})
	}
}
