package core

import "testing"

func TestSha256KnownVector(t *testing.T) {
	got := sha256Hex([]byte(""))
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestSha256Hello(t *testing.T) {
	got := sha256Hex([]byte("hello"))
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestSha256Pair(t *testing.T) {
	combined := sha256Pair([]byte("hello"), []byte("world"))
	expected := sha256Sum([]byte("helloworld"))
	if combined != expected {
		t.Fatalf("sha256_pair mismatch")
	}
}
