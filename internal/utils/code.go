package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

// Без похожих символов (0/O, 1/I/L), чтобы код читался со стикера
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomCodeSuffix генерирует случайный суффикс кода заданной длины
func RandomCodeSuffix(n int) string {
	var sb strings.Builder
	k := len(codeAlphabet)

	for i := 0; i < n; i++ {
		c := codeAlphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// GenerateContainerCode строит код тары из префикса типа и случайного суффикса
func GenerateContainerCode(prefix string) string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(strings.TrimSpace(prefix)), RandomCodeSuffix(6))
}
