// Package params gathers provisioning parameter values for product launches.
// The catalog declares which parameters a version accepts; a Source decides
// how values for them are obtained.
package params

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parameter describes a single provisioning parameter declared by a product
// version.
type Parameter struct {
	Key         string
	Description string
	Default     string
}

// Source produces a value for every declared parameter.
type Source interface {
	Values(ctx context.Context, parameters []Parameter) (map[string]string, error)
}

// Interactive prompts for each parameter on the terminal. An empty answer
// takes the declared default.
type Interactive struct {
	In  io.Reader
	Out io.Writer
}

// NewInteractive creates an Interactive source reading stdin and writing
// stdout.
func NewInteractive() *Interactive {
	return &Interactive{In: os.Stdin, Out: os.Stdout}
}

// Values prompts for each parameter in declaration order.
func (i *Interactive) Values(ctx context.Context, parameters []Parameter) (map[string]string, error) {
	reader := bufio.NewReader(i.In)
	values := make(map[string]string, len(parameters))
	for _, parameter := range parameters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if parameter.Description != "" {
			fmt.Fprintf(i.Out, "%s\n", parameter.Description)
		}
		fmt.Fprintf(i.Out, "%s [%s]: ", parameter.Key, parameter.Default)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			answer = parameter.Default
		}
		values[parameter.Key] = answer
	}
	return values, nil
}

// Static answers every parameter from a fixed map, falling back to declared
// defaults for keys it does not carry.
type Static map[string]string

// Values resolves each parameter from the map or its default.
func (s Static) Values(_ context.Context, parameters []Parameter) (map[string]string, error) {
	values := make(map[string]string, len(parameters))
	for _, parameter := range parameters {
		if answer, ok := s[parameter.Key]; ok {
			values[parameter.Key] = answer
			continue
		}
		values[parameter.Key] = parameter.Default
	}
	return values, nil
}
