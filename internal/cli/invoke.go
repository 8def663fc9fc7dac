package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"GoNLP/internal/nlp"
	"GoNLP/internal/value"
)

func newInvokeCommand() *cobra.Command {
	var (
		inputFile string
		wire      bool
	)

	cmd := &cobra.Command{
		Use:   "invoke <module> [input]",
		Short: "Invoke an analyzer once",
		Long: `Invoke an analyzer with a YAML or JSON input document and print its output
as JSON. The input is read from the argument, from --file, or from stdin
when --file is "-".`,
		Example: `  # Inline input
  gonlp invoke AnalyzeSentiment '{text: "what a great day"}'

  # Qualified name, input from a file
  gonlp invoke nlp.sentiment.ExtractKeywords -f request.yaml

  # Print the tagged wire form
  echo 'text: "el perro y la casa"' | gonlp invoke DetectLanguage -f - --wire`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var inline string
			if len(args) == 2 {
				inline = args[1]
			}
			return runInvoke(cmd, args[0], inline, inputFile, wire)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", `Input document ("-" for stdin)`)
	cmd.Flags().BoolVar(&wire, "wire", false, "Print the tagged wire form instead of plain JSON")
	return cmd
}

func runInvoke(cmd *cobra.Command, name, inline, inputFile string, wire bool) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	registry, err := nlp.NewRegistry(cfg.Namespace)
	if err != nil {
		return err
	}
	def, err := registry.Get(name)
	if err != nil {
		return err
	}

	doc, err := readInput(cmd.InOrStdin(), inline, inputFile)
	if err != nil {
		return err
	}

	var native any
	if err := yaml.Unmarshal(doc, &native); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	input, err := value.FromNative(native, def.InputType)
	if err != nil {
		return err
	}

	out, err := registry.Invoke(def.Name, input)
	if err != nil {
		return err
	}

	var data []byte
	if wire {
		data, err = value.Marshal(out)
	} else {
		data, err = json.MarshalIndent(value.ToNative(out), "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func readInput(stdin io.Reader, inline, inputFile string) ([]byte, error) {
	switch {
	case inline != "" && inputFile != "":
		return nil, errors.New("pass the input inline or with --file, not both")
	case inline != "":
		return []byte(inline), nil
	case inputFile == "-":
		return io.ReadAll(stdin)
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}
	return nil, errors.New("no input given")
}
