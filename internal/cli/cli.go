package cli

import (
	"envois3/internal/command"
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Result is a fully parsed invocation: what to do, and which backend client
// does it.
type Result struct {
	Command command.Command
	Client  command.Client
}

// UsageError covers unknown subcommands, unknown flags and wrong positional
// arity. No backend process is launched once one is reported.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// HelpError carries the rendered usage text when --help is requested.
type HelpError struct {
	Usage string
}

func (e *HelpError) Error() string {
	return "help requested"
}

type options struct {
	Client string `long:"client" value-name:"s4cmd|s5cmd" description:"S3 client used to carry out the operation (default: s5cmd)"`
}

type lsCommand struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Bucket or prefix to list"`
	} `positional-args:"yes"`
	result *Result
}

func (c *lsCommand) Execute(extra []string) error {
	if len(extra) > 0 {
		return &UsageError{Message: fmt.Sprintf("unexpected argument %q, ls takes at most one path", extra[0])}
	}
	c.result.Command = command.List{Path: c.Args.Path}
	return nil
}

type putCommand struct {
	Args struct {
		Source string `positional-arg-name:"source" required:"yes" description:"Local file to upload"`
		Target string `positional-arg-name:"target" required:"yes" description:"Destination S3 URI"`
	} `positional-args:"yes"`
	result *Result
}

func (c *putCommand) Execute(extra []string) error {
	if len(extra) > 0 {
		return &UsageError{Message: fmt.Sprintf("unexpected argument %q, put takes exactly a source and a target", extra[0])}
	}
	c.result.Command = command.Put{Source: c.Args.Source, Target: c.Args.Target}
	return nil
}

// Parse turns the raw argument list into a Result. The subcommand is parsed
// before the --client value is validated, so an unknown subcommand wins when
// both are wrong. --client may appear anywhere on the line, including after
// the positional arguments.
func Parse(args []string) (*Result, error) {
	res := &Result{}
	opts := &options{}

	parser := flags.NewNamedParser("envoi-s3", flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = "Uniform front end for the s4cmd and s5cmd S3 clients"

	if _, err := parser.AddGroup("Application Options", "", opts); err != nil {
		return nil, err
	}
	if _, err := parser.AddCommand("ls", "List objects", "List buckets, or the objects under the given path.", &lsCommand{result: res}); err != nil {
		return nil, err
	}
	if _, err := parser.AddCommand("put", "Upload a file", "Upload a local file to an S3 target.", &putCommand{result: res}); err != nil {
		return nil, err
	}

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, classify(err)
	}

	client, err := resolveClient(opts.Client)
	if err != nil {
		return nil, err
	}
	res.Client = client

	return res, nil
}

func resolveClient(name string) (command.Client, error) {
	if name == "" {
		return command.DefaultClient, nil
	}
	return command.ParseClient(name)
}

func classify(err error) error {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr
	}

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		if flagsErr.Type == flags.ErrHelp {
			return &HelpError{Usage: flagsErr.Message}
		}
		return &UsageError{Message: flagsErr.Message}
	}

	return err
}
