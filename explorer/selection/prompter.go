package selection

import (
	"bikeshare/utils"
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions in the terminal and reads the answers line by line
type Prompter struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(reader),
		writer:  writer,
	}
}

// Writer returns where the Prompter writes
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Println writes the line followed by a line break
func (p *Prompter) Println(line string) error {
	_, err := fmt.Fprintln(p.writer, line)
	return err
}

// Ask writes the question and returns the next line of input. io.EOF is returned once the input is closed
func (p *Prompter) Ask(question string) (string, error) {
	if err := p.Println(question); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Choose asks the question until the answer is one of the options. The comparison is case-insensitive
// and the answer is returned in lower case
func (p *Prompter) Choose(question string, options []string) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		choice := utils.NormalizeInput(answer)
		if utils.ContainsString(choice, options) {
			return choice, nil
		}

		err = p.Println(fmt.Sprintf("Invalid input. Please choose from %s.", strings.Join(options, ", ")))
		if err != nil {
			return "", err
		}
	}
}
