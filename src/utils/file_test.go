package utils

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"
)

func TestParseKeyInput(t *testing.T) {
	result, err := ParseKeyInput("")
	if err != nil {
		t.Errorf("ParseKeyInput(\"\") failed: %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil for empty input, got %v", result)
	}

	testString := "test passphrase"
	result, err = ParseKeyInput(testString)
	if err != nil {
		t.Errorf("ParseKeyInput failed: %v", err)
	}
	if !bytes.Equal(result, []byte(testString)) {
		t.Errorf("String input mismatch: got %s, want %s", result, testString)
	}

	tempDir, err := os.MkdirTemp("", "rubbishrsa_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "keyfile.txt")
	testContent := []byte("file content passphrase")
	if err := os.WriteFile(testFile, testContent, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	result, err = ParseKeyInput("@file:" + testFile)
	if err != nil {
		t.Errorf("ParseKeyInput file failed: %v", err)
	}
	if !bytes.Equal(result, testContent) {
		t.Errorf("File input mismatch: got %s, want %s", result, testContent)
	}

	if _, err := ParseKeyInput("@file:/nonexistent/file"); err == nil {
		t.Errorf("Expected error for non-existent file")
	}
}

func TestReadWriteFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "rubbishrsa_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	testFile := filepath.Join(tempDir, "test.txt")
	testData := []byte("Hello, World!")

	if err := WriteFile(testFile, testData); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	readData, err := ReadFile(testFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(readData, testData) {
		t.Errorf("File content mismatch: got %s, want %s", readData, testData)
	}
}

func TestKeyFileRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "rubbishrsa_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	fields := map[string]*big.Int{
		"e": big.NewInt(65537),
		"n": big.NewInt(3233),
		"d": big.NewInt(2753),
	}

	path := filepath.Join(tempDir, "key.rubbishrsa")
	if err := WriteKeyFile(path, fields); err != nil {
		t.Fatalf("WriteKeyFile failed: %v", err)
	}

	got, err := ReadKeyFile(path)
	if err != nil {
		t.Fatalf("ReadKeyFile failed: %v", err)
	}
	for name, want := range fields {
		v, ok := got[name]
		if !ok {
			t.Fatalf("field %q missing after round trip", name)
		}
		if v.Cmp(want) != 0 {
			t.Errorf("field %q: got %s, want %s", name, v, want)
		}
	}
}

func TestProtectedKeyFileRoundTrip(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "rubbishrsa_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	fields := map[string]*big.Int{
		"e": big.NewInt(65537),
		"n": big.NewInt(3233),
		"d": big.NewInt(2753),
	}

	path := filepath.Join(tempDir, "key.rubbishrsa")
	passphrase := []byte("correct horse battery staple")
	if err := WriteProtectedKeyFile(path, fields, passphrase); err != nil {
		t.Fatalf("WriteProtectedKeyFile failed: %v", err)
	}

	protected, err := IsProtectedKeyFile(path)
	if err != nil {
		t.Fatalf("IsProtectedKeyFile failed: %v", err)
	}
	if !protected {
		t.Errorf("expected IsProtectedKeyFile to report true")
	}

	got, err := ReadProtectedKeyFile(path, passphrase)
	if err != nil {
		t.Fatalf("ReadProtectedKeyFile failed: %v", err)
	}
	for name, want := range fields {
		if v, ok := got[name]; !ok || v.Cmp(want) != 0 {
			t.Errorf("field %q mismatch: got %v, want %s", name, v, want)
		}
	}

	if _, err := ReadProtectedKeyFile(path, []byte("wrong passphrase")); err == nil {
		t.Errorf("expected an error when opening with the wrong passphrase")
	}
}
