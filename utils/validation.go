package utils

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
)

const (
	MaxCommentLength = 250
	MaxImageBytes    = 5 << 20
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	Locations = []string{"Norte", "Centro", "Sur", "Valles"}

	FoodTypes = []string{
		"Tradicional", "Mariscos", "Parrilla", "Italiana",
		"China", "Vegetariana", "Rápida", "Postres",
	}

	allowedImageTypes = []string{"jpeg", "png", "gif"}
)

func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errs.Validation("invalid email format")
	}
	return nil
}

// ValidatePassword enforces the strength policy: at least 8 characters with
// an uppercase letter, a lowercase letter and a digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errs.Validation("password must be at least 8 characters")
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errs.Validation("password must contain uppercase, lowercase and a digit")
	}
	return nil
}

func ValidateName(name string) error {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) < 3 || len(runes) > 50 {
		return errs.Validation("name must be between 3 and 50 characters")
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return errs.Validation("name may only contain letters and spaces")
		}
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.Validation("rating must be an integer between 1 and 5")
	}
	return nil
}

func ValidateComment(comment string) error {
	if len([]rune(comment)) > MaxCommentLength {
		return errs.Validation(fmt.Sprintf("comment must be %d characters or fewer", MaxCommentLength))
	}
	return nil
}

// ValidateImage checks a base64 data URI: allowed MIME type and decoded size
// within the limit. Empty input is valid (image is optional).
func ValidateImage(dataURI string) error {
	if dataURI == "" {
		return nil
	}
	rest, ok := strings.CutPrefix(dataURI, "data:image/")
	if !ok {
		return errs.Validation("image must be a base64 data URI")
	}
	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return errs.Validation("image must be base64 encoded")
	}
	if !contains(allowedImageTypes, mime) {
		return errs.Validation("image must be jpeg, png or gif")
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return errs.Validation("image contains invalid base64 data")
	}
	if len(decoded) > MaxImageBytes {
		return errs.Validation("image must be 5MB or smaller")
	}
	return nil
}

func ValidateLocation(location string) error {
	if !contains(Locations, location) {
		return errs.Validation("invalid location")
	}
	return nil
}

func ValidateFoodTypes(types []string) error {
	for _, t := range types {
		if !contains(FoodTypes, t) {
			return errs.Validation(fmt.Sprintf("invalid food type: %s", t))
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
