package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	"github.com/msto63/expar/foundation/expar"
)

// getInputs collects expressions from a file, piped stdin or the command
// arguments, in that order of preference. Arguments form one expression.
func getInputs(args []string, file string) ([]string, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			code := mdwerror.CodeIOError
			if os.IsNotExist(err) {
				code = mdwerror.CodeFileNotFound
			}
			return nil, mdwerror.Wrap(err, "cannot open input file").
				WithCode(code).
				WithDetail("path", file)
		}
		defer f.Close()
		return readLines(f)
	}

	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		return readLines(os.Stdin)
	}

	return nil, mdwerror.New("no expression given, pass it as arguments, with --file or on stdin").
		WithCode(mdwerror.CodeInvalidInput)
}

// readLines returns the non-blank lines of r that are not '#' comments
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to read input").WithCode(mdwerror.CodeIOError)
	}
	return lines, nil
}

// outputFormat resolves the --format flag, falling back to the config
func outputFormat(flag string) (expar.Format, error) {
	if flag == "" && cfg != nil {
		flag = cfg.Output.Format
	}
	return expar.ParseFormat(flag)
}
