package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestTokenAuthorizer_Generate(t *testing.T) {
	a := NewTokenAuthorizer()

	seen := make(map[string]bool)
	for range 100 {
		tok := a.Generate()
		parsed, err := uuid.Parse(tok)
		if err != nil {
			t.Fatalf("Generate() = %q: не UUID: %v", tok, err)
		}
		if parsed.Version() != 4 {
			t.Errorf("Generate() = %q: версия %d, ожидалась 4", tok, parsed.Version())
		}
		if seen[tok] {
			t.Fatalf("Generate() вернул повтор %q", tok)
		}
		seen[tok] = true
	}
}

func TestTokenAuthorizer_Authorize(t *testing.T) {
	a := NewTokenAuthorizer()
	stored := "0f8fad5b-d9cb-469f-a165-70867728950e"

	tests := []struct {
		name     string
		stored   string
		supplied string
		wantErr  bool
	}{
		{"совпадение", stored, stored, false},
		{"другой токен", stored, "7c9e6679-7425-40de-944b-e07fc1f90ae7", true},
		{"пустой токен", stored, "", true},
		{"префикс токена", stored, stored[:8], true},
		{"регистр важен", stored, "0F8FAD5B-D9CB-469F-A165-70867728950E", true},
		{"пустой сохранённый", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authorize(tt.stored, tt.supplied)
			if tt.wantErr && !errors.Is(err, ErrUnauthorized) {
				t.Errorf("Authorize() = %v, ожидалась ErrUnauthorized", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Authorize() = %v, ожидался nil", err)
			}
		})
	}
}
