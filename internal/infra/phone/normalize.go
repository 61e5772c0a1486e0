// Package phone normaliza números para o formato internacional usado pelos
// transports de chat (+5511999998888).
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Tamanho de um número doméstico brasileiro com DDD (11 dígitos).
const domesticLength = 11

// Normalize remove tudo que não é dígito, prefixa o código de país padrão
// quando o número parece doméstico e devolve com "+" na frente. String sem
// nenhum dígito é erro de formatação (envio falha na hora, sem retry).
func Normalize(raw, defaultCountryCode string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	if number == "" {
		return "", fmt.Errorf("telefone inválido: %q não contém dígitos", raw)
	}

	if !hasCountryPrefix(number, defaultCountryCode) && len(number) == domesticLength {
		number = defaultCountryCode + number
	}

	return "+" + number, nil
}

// hasCountryPrefix reconhece números que já vêm em formato internacional:
// ou começam com o código padrão, ou parseiam como um número válido de
// qualquer país.
func hasCountryPrefix(digits, defaultCountryCode string) bool {
	if strings.HasPrefix(digits, defaultCountryCode) {
		return true
	}

	parsed, err := phonenumbers.Parse("+"+digits, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
