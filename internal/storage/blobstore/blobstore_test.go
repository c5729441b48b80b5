package blobstore

import (
	"errors"
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("c1", "i1", "Паспорт скан.PDF")

	if err := ValidateKey(key); err != nil {
		t.Fatalf("ObjectKey вернул невалидный ключ %q: %v", key, err)
	}
	if !strings.HasPrefix(key, "c1/i1/Паспортскан_") {
		t.Errorf("ключ %q: ожидался префикс c1/i1/Паспортскан_", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("ключ %q: ожидалось расширение .pdf в нижнем регистре", key)
	}

	// Уникальность при одинаковом имени
	if ObjectKey("c1", "i1", "a.txt") == ObjectKey("c1", "i1", "a.txt") {
		t.Error("ключи для одинаковых имён совпали")
	}
}

func TestObjectKey_UnsafeInput(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"обход каталога", "../../etc/passwd"},
		{"абсолютный путь", "/etc/shadow.txt"},
		{"только точки", ".."},
		{"пустое имя", ""},
		{"спецсимволы", "a?b*c|d.t$xt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ObjectKey("c1", "i1", tt.filename)
			if err := ValidateKey(key); err != nil {
				t.Errorf("ObjectKey(%q) = %q: %v", tt.filename, key, err)
			}
			if strings.Count(key, "/") != 2 {
				t.Errorf("ObjectKey(%q) = %q: ожидалось ровно 3 сегмента", tt.filename, key)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"a/b/c.txt", true},
		{"file.pdf", true},
		{"", false},
		{"/abs/path", false},
		{"a/../b", false},
		{"a//b", false},
		{"./a", false},
		{`a\b`, false},
	}

	for _, tt := range tests {
		err := ValidateKey(tt.key)
		if tt.valid && err != nil {
			t.Errorf("ValidateKey(%q) = %v, ожидался nil", tt.key, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidKey) {
			t.Errorf("ValidateKey(%q) = %v, ожидалась ErrInvalidKey", tt.key, err)
		}
	}
}

// TestSanitize проверяет очистку строк для ключа объекта.
func TestSanitize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"hello world", "helloworld"},
		{"test-file_01", "test-file_01"},
		{"file@#$%", "file"},
		{"", "file"}, // пустая строка → "file"
		{"тест", "тест"},
	}

	for _, tt := range tests {
		result := sanitize(tt.input)
		if result != tt.expected {
			t.Errorf("sanitize(%q): ожидалось %q, получено %q", tt.input, tt.expected, result)
		}
	}
}
