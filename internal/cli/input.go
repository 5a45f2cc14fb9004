package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Run drives the console loop: one command per line, result printed back,
// until EOF or an exit command. Only the command name is lower-cased;
// arguments pass through unchanged and each handler applies the
// normalization its domain needs (paths and regex patterns stay intact).
func (s *Session) Run(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Please type \"help\" for a list of accepted commands!")

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		name, args := strings.ToLower(fields[0]), fields[1:]
		if name == "exit" || name == "quit" {
			fmt.Fprintln(w, "Goodbye!")
			return nil
		}
		if out := s.Dispatch(name, args); out != "" {
			fmt.Fprintln(w, out)
		}
	}
	if err := sc.Err(); err != nil {
		log.Errorf("Console input failed: %v", err)
		return err
	}
	return nil
}
