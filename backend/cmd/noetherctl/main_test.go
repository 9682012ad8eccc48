package main

import (
	"os"
	"testing"
)

// Testing command line utilities can be annoying; the way this mirrors
// the rest of the pack is by spoofing os.Args and running the whole
// app object end to end, so a help invocation at least exercises full
// command wiring.
func TestMainHelp(t *testing.T) {
	rescueStdout := os.Stdout
	_, w, _ := os.Pipe()
	os.Stdout = w

	arg := os.Args[0:1]
	os.Args = append(arg, "-h")
	main()
	os.Args = os.Args[0:1]
	w.Close()
	os.Stdout = rescueStdout
}

func TestApplicationHasExpectedCommands(t *testing.T) {
	app := application()

	names := map[string]bool{}
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	if !names["energy"] || !names["validate"] {
		t.Fatalf("expected energy and validate commands, got %v", names)
	}
}
