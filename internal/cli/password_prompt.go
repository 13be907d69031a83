package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errPasswordsDiffer = errors.New("passwords do not match")

// promptNewPassword asks twice without echo and returns the confirmed value.
func promptNewPassword(stdin *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "New password: ")
	first, err := readSecretLine(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(out, "Repeat password: ")
	second, err := readSecretLine(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if first != second {
		return "", errPasswordsDiffer
	}
	return first, nil
}

func readSecretLine(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	var line string
	err := withEchoDisabled(stdin, func() error {
		var readErr error
		line, readErr = readTrimmedLine(stdin)
		return readErr
	})
	return line, err
}

func readTrimmedLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
