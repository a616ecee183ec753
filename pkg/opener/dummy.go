package opener

import "fmt"

// DummyName is the name identifier for the dummy opener.
const DummyName = "dummy"

// Dummy prints the path instead of opening it, for tests and headless runs.
type Dummy struct{}

// NewDummy creates a new Dummy opener.
func NewDummy() *Dummy {
	return &Dummy{}
}

// Name returns the name of the opener.
func (d *Dummy) Name() string {
	return DummyName
}

// IsInstalled always returns true for the dummy opener.
func (d *Dummy) IsInstalled() bool {
	return true
}

// Open prints the path for testing purposes.
func (d *Dummy) Open(path string) error {
	fmt.Println("DUMMY_OPENER_PATH:", path)
	return nil
}
