package hash

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "SecurePass123!",
			wantErr:  false,
		},
		{
			name:     "short password",
			password: "abc",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Hash() expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Hash() unexpected error = %v", err)
				return
			}

			if hash == tt.password {
				t.Error("Hash() returned unhashed password")
			}

			if !strings.HasPrefix(hash, "$2a$10$") {
				t.Errorf("Hash() invalid bcrypt format, got = %s", hash[:10])
			}
		})
	}
}

func TestHashDifferentOutputsBothCompare(t *testing.T) {
	password := "SamePassword123!"

	hash1, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	hash2, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes for same password (salt)")
	}

	if err := Compare(hash1, password); err != nil {
		t.Errorf("Compare(hash1) error = %v", err)
	}
	if err := Compare(hash2, password); err != nil {
		t.Errorf("Compare(hash2) error = %v", err)
	}
}

func TestCompare(t *testing.T) {
	password := "MySecurePassword123!"
	hash, err := Hash(password)
	if err != nil {
		t.Fatalf("Failed to generate hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"correct password", password, false},
		{"incorrect password", "WrongPassword", true},
		{"empty password", "", true},
		{"case sensitive", strings.ToUpper(password), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(hash, tt.password)
			if tt.wantErr && err == nil {
				t.Error("Compare() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Compare() unexpected error = %v", err)
			}
		})
	}
}

func BenchmarkHash(b *testing.B) {
	password := "BenchmarkPassword123!"

	for i := 0; i < b.N; i++ {
		if _, err := Hash(password); err != nil {
			b.Fatalf("Hash() error = %v", err)
		}
	}
}
