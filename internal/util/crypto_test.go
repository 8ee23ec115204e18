package util

import (
	"testing"
)

func TestGenerateNChar(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Generate 5 characters", 5, false},
		{"Generate 10 characters", 10, false},
		{"Generate 0 characters", 0, false},
		{"Generate negative characters", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateNChar(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateNChar() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.n {
				t.Errorf("GenerateNChar() got = %v, want length %v", got, tt.n)
			}
		})
	}
}

func TestGenerateSerial(t *testing.T) {
	got, err := GenerateSerial(6)
	if err != nil {
		t.Fatalf("GenerateSerial() error = %v", err)
	}
	if len(got) != 6 {
		t.Errorf("GenerateSerial() got = %v, want length 6", got)
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !ComparePassword(hash, "s3cret") {
		t.Error("ComparePassword() should accept the original password")
	}
	if ComparePassword(hash, "wrong") {
		t.Error("ComparePassword() should reject a wrong password")
	}
}
