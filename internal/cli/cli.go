package cli

import (
	"fmt"
	"io"
	"strings"
)

// Command selects one of the explorer operations.
type Command int

// Commands recognized on the command line.
const (
	CommandNone Command = iota
	CommandAsteroids
	CommandAPOD
	CommandMars
)

// Invocation is the parsed command line: the selected command, its two
// operands, and the logging options.
type Invocation struct {
	Command   Command
	Args      [2]string
	LogLevel  string
	LogFormat string
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `A NASA API explorer that can get near Earth object data, Mars rover
pictures, and the Astronomy Picture of the Day.

Sign up for an API key at https://api.nasa.gov and export it:

  export API_KEY=value

Usage:
  nasa-explorer [options] <command> <arg> <arg>

Commands:
  -as, --asteroids <start_date> <end_date>
        write near Earth object data for the date range to a csv file
  -ap, --apod <date> <file_name>
        save the Astronomy Picture of the Day for 'date' as 'file_name' (no extension)
  -m, --mars <file_name> <date>
        write the Mars rover image urls to a text file and save the first image
  -h, --help
        show this help text

Options:
  -log-level <level>
        debug, info, warn or error (default "info")
  -log-format <format>
        console or json (default "console")
`

// Usage writes the help text.
func Usage(output io.Writer) {
	fmt.Fprint(output, usageText)
}

// Parse processes command-line arguments. It returns a populated Invocation,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// The flag surface follows the published interface: one mode flag taking two
// operands, so parsing walks the argument list directly.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	inv := &Invocation{
		LogLevel:  "info",
		LogFormat: "console",
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help":
			Usage(output)
			return nil, true, nil

		case "-log-level", "--log-level":
			value, next, err := optionValue(args, i, arg)
			if err != nil {
				return nil, false, err
			}
			i = next
			inv.LogLevel = strings.ToLower(value)

		case "-log-format", "--log-format":
			value, next, err := optionValue(args, i, arg)
			if err != nil {
				return nil, false, err
			}
			i = next
			inv.LogFormat = strings.ToLower(value)

		case "-as", "--asteroids":
			next, err := operands(args, i, arg, inv, CommandAsteroids)
			if err != nil {
				return nil, false, err
			}
			i = next

		case "-ap", "--apod":
			next, err := operands(args, i, arg, inv, CommandAPOD)
			if err != nil {
				return nil, false, err
			}
			i = next

		case "-m", "--mars":
			next, err := operands(args, i, arg, inv, CommandMars)
			if err != nil {
				return nil, false, err
			}
			i = next

		default:
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown argument %q, see -h for usage", arg)}
		}
	}

	if inv.Command == CommandNone {
		Usage(output)
		return nil, true, nil
	}

	switch inv.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}
	switch inv.LogFormat {
	case "console", "json":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}

	return inv, false, nil
}

// optionValue consumes the single value following an option flag.
func optionValue(args []string, i int, name string) (string, int, error) {
	if i+1 >= len(args) {
		return "", 0, &ExitError{Code: 2, Message: fmt.Sprintf("%s requires a value", name)}
	}
	return args[i+1], i + 1, nil
}

// operands consumes the two operands following a command flag.
func operands(args []string, i int, name string, inv *Invocation, cmd Command) (int, error) {
	if inv.Command != CommandNone {
		return 0, &ExitError{Code: 2, Message: "only one command may be given per invocation"}
	}
	if i+2 >= len(args) {
		return 0, &ExitError{Code: 2, Message: fmt.Sprintf("%s requires two arguments, see -h for usage", name)}
	}
	inv.Command = cmd
	inv.Args[0] = args[i+1]
	inv.Args[1] = args[i+2]
	return i + 2, nil
}
