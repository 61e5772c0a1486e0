package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	hasEmail := strings.TrimSpace(input.Email) != ""
	hasPhone := strings.TrimSpace(input.Phone) != ""

	if !hasEmail && !hasPhone {
		errors = append(errors, ValidationError{"contact", "email or phone is required"})
	}

	if hasEmail {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if hasPhone && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

func ValidateSaleWebhookInput(input SaleWebhookInput) []ValidationError {
	var errors []ValidationError

	if !isValidPlatform(input.Platform) {
		errors = append(errors, ValidationError{"platform", "must be hotmart, monetizze or eduzz"})
	}

	if strings.TrimSpace(input.TransactionID) == "" {
		errors = append(errors, ValidationError{"transaction_id", "is required"})
	}

	if strings.TrimSpace(input.BuyerEmail) == "" {
		errors = append(errors, ValidationError{"buyer_email", "is required"})
	} else if _, err := mail.ParseAddress(input.BuyerEmail); err != nil {
		errors = append(errors, ValidationError{"buyer_email", "is invalid"})
	}

	if strings.TrimSpace(input.Product) == "" {
		errors = append(errors, ValidationError{"product", "is required"})
	}

	if input.Amount < 0 {
		errors = append(errors, ValidationError{"amount", "must not be negative"})
	}

	if input.Commission < 0 {
		errors = append(errors, ValidationError{"commission", "must not be negative"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")

	return len(cleaned) >= 10 && len(cleaned) <= 13
}

func isValidPlatform(platform string) bool {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "hotmart", "monetizze", "eduzz":
		return true
	}
	return false
}
