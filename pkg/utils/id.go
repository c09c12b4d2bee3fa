package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador dos registros de ajuste de orçamento.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
