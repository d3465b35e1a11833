package cli

import (
	"bytes"
	"testing"
)

func TestHelloDefault(t *testing.T) {
	var out bytes.Buffer
	helloCmd.SetOut(&out)
	t.Cleanup(func() { helloCmd.SetOut(nil) })

	if err := helloCmd.RunE(helloCmd, nil); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Hello, world!\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestHelloNamed(t *testing.T) {
	var out bytes.Buffer
	helloCmd.SetOut(&out)
	t.Cleanup(func() { helloCmd.SetOut(nil) })

	if err := helloCmd.RunE(helloCmd, []string{"gopher"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Hello, gopher!\n" {
		t.Fatalf("output = %q", got)
	}
}
