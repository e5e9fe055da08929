package main

import (
	"fmt"
	"os"
	"strings"

	"gameframe/core/text"
)

// Prints every conditioned form of the given names, to see why two names
// do or do not deduplicate.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_condition <name> [name...]")
		os.Exit(2)
	}

	for _, name := range os.Args[1:] {
		fmt.Printf("=== %q ===\n", name)
		show("condition", text.Condition, name)
		show("developer", text.ConditionDeveloper, name)
		show("heavy", text.ConditionHeavy, name)
		fmt.Printf("  %-10s %s\n", "tokens", strings.Join(text.KeywordTokens(name), " | "))
	}

	if len(os.Args) == 3 {
		a, b := os.Args[1], os.Args[2]
		ka, _ := text.Condition(a)
		kb, _ := text.Condition(b)
		fmt.Printf("\nsame key: %v\n", ka == kb)
		fmt.Printf("%q contains %q: %v\n", a, b, text.Contains(a, b))
	}
}

func show(label string, fn func(string) (string, error), s string) {
	key, err := fn(s)
	if err != nil {
		fmt.Printf("  %-10s error: %v\n", label, err)
		return
	}
	fmt.Printf("  %-10s %q\n", label, key)
}
