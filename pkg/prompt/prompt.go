package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lerenn/resource-cleaner/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForPath prompts the user for a path, returning defaultPath on empty input.
	PromptForPath(message, defaultPath string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectFolder lets the user browse directories from start and pick one.
	// It returns ErrNoSelection when the user quits without choosing.
	PromptSelectFolder(start string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	fs     fs.FS
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		fs:     fs.NewFS(),
	}
}

// PromptForPath prompts the user for a path, returning defaultPath on empty input.
func (p *realPrompt) PromptForPath(message, defaultPath string) (string, error) {
	fmt.Printf("%s [default: %s]: ", message, defaultPath)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultPath, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectFolder lets the user browse directories from start and pick one.
func (p *realPrompt) PromptSelectFolder(start string) (string, error) {
	return promptSelectFolderBubbleTea(p.fs, start)
}
