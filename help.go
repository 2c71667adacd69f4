package main

import (
	"fmt"
	"strings"
)

// PrintHelpFromFlags prints help text using flag definitions
func PrintHelpFromFlags(programName string, categories []FlagCategory) {
	fmt.Print(RenderHelpFromFlags(programName, categories))
}

// RenderHelpFromFlags renders help text from flag categories
func RenderHelpFromFlags(programName string, categories []FlagCategory) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf(`Usage: %s [flags] USERNAME
       %s --serve [flags]

List the public GitHub repositories of an account.

With USERNAME, fetch the account's repositories once and print the
owner's profile link followed by one link per repository.

With --serve, serve a search page: type an account name, press
Pesquisar, and the page shows the avatar and repository links.

`, programName, programName))

	maxWidth := 0
	for _, category := range categories {
		for _, flag := range category.Flags {
			if w := len(flag.Display()); w > maxWidth {
				maxWidth = w
			}
		}
	}

	if maxWidth < 20 {
		maxWidth = 20
	}

	for _, category := range categories {
		result.WriteString(category.Name + "\n")

		for _, flag := range category.Flags {
			flagDisplay := flag.Display()
			padding := strings.Repeat(" ", maxWidth-len(flagDisplay)+2)
			result.WriteString(fmt.Sprintf("  %s%s%s\n", flagDisplay, padding, flag.Description))
		}
		result.WriteString("\n")
	}

	result.WriteString(fmt.Sprintf(`Environment:
  REPOFINDER_API_URL, REPOFINDER_ADDR, REPOFINDER_DEBUG and
  REPOFINDER_ORDERED set flag defaults; a .env file in the working
  directory is read first.

Examples:
  # List octocat's repositories.
  %s octocat

  # Print only the repository URLs.
  %s -o quiet octocat

  # Serve the search page and open it.
  %s --serve --open
`, programName, programName, programName))

	return result.String()
}
