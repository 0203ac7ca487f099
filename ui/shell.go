package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"zscorecalc/domain/zscore"
	"zscorecalc/internal/errors"
)

const shellHelp = `Enter data values, one or more per line (commas or newlines).
Commands:
  :calc          calculate and print the report
  :clear         clear data and output
  :threshold T   set the z threshold (current value shown by :threshold)
  :show          print the last report
  :help          show this help
  :quit          exit`

var alertColor = color.New(color.FgRed, color.Bold)

// Alert writes a user-facing notification for err. Threshold failures print
// only the fixed notification text.
func Alert(w io.Writer, err error) {
	msg := err.Error()
	if errors.GetCode(err) == errors.CodeThresholdParse {
		msg = zscore.ThresholdErrorMessage
	}
	alertColor.Fprintln(w, msg)
}

// RunShell drives a session from line-oriented input until EOF or :quit.
// Lines that are not commands are appended to the session data.
func RunShell(in io.Reader, out, errOut io.Writer, s *Session) error {
	fmt.Fprintln(out, shellHelp)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		cmd, arg, isCommand := parseCommand(line)
		if !isCommand {
			s.AppendLine(line)
			continue
		}

		switch cmd {
		case "calc":
			if err := s.Calculate(); err != nil {
				Alert(errOut, err)
				continue
			}
			fmt.Fprintln(out, s.Output())
		case "clear":
			s.Clear()
		case "threshold":
			if arg == "" {
				fmt.Fprintf(out, "threshold: %s\n", s.Threshold())
				continue
			}
			s.SetThreshold(arg)
		case "show":
			fmt.Fprintln(out, s.Output())
		case "help":
			fmt.Fprintln(out, shellHelp)
		case "quit", "q":
			return nil
		default:
			fmt.Fprintf(errOut, "unknown command :%s (try :help)\n", cmd)
		}
	}

	return scanner.Err()
}

func parseCommand(line string) (cmd, arg string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		return "", "", false
	}
	cmd, arg, _ = strings.Cut(trimmed[1:], " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg), true
}
