package command

import "fmt"

// Command is one S3 operation in the wrapper's uniform vocabulary. Exactly
// one command is active per invocation.
type Command interface {
	isCommand()
}

// List lists buckets, or the objects under Path when Path is non-empty.
type List struct {
	Path string
}

// Put uploads Source to Target.
type Put struct {
	Source string
	Target string
}

func (List) isCommand() {}
func (Put) isCommand()  {}

// Client identifies which backend binary carries out the operation.
type Client int

const (
	S4cmd Client = iota
	S5cmd
)

// DefaultClient is used when --client is omitted.
const DefaultClient = S5cmd

func (c Client) String() string {
	switch c {
	case S4cmd:
		return "s4cmd"
	case S5cmd:
		return "s5cmd"
	}
	return fmt.Sprintf("Client(%d)", int(c))
}

// Binary is the executable name the client is expected to be installed as.
func (c Client) Binary() string {
	return c.String()
}

type UnknownClientError struct {
	Name string
}

func (e *UnknownClientError) Error() string {
	return fmt.Sprintf("unknown client %q, supported clients are s4cmd and s5cmd", e.Name)
}

// ParseClient maps a --client value onto a Client. Matching is exact and
// case-sensitive.
func ParseClient(name string) (Client, error) {
	switch name {
	case "s4cmd":
		return S4cmd, nil
	case "s5cmd":
		return S5cmd, nil
	}
	return DefaultClient, &UnknownClientError{Name: name}
}
