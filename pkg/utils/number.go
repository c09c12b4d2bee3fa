package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToCents converte um valor em unidades da moeda para a menor unidade
// (centavos), como a Graph API espera nos campos de orçamento.
func ToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// FromCents converte centavos de volta para unidades da moeda.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// PercentChange calcula a variação percentual de oldValue para newValue.
// Retorna 0 quando oldValue é zero para evitar divisão por zero.
func PercentChange(oldValue, newValue int64) float64 {
	if oldValue == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(newValue-oldValue) / float64(oldValue) * 100)
}
