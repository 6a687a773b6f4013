package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/wahlandcase/subjectlens/internal/ui"
	"github.com/wahlandcase/subjectlens/pkg/subject"

	"github.com/spf13/cobra"
)

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [subject...]",
		Short: "Classify subject lines from arguments or stdin",
		Long: `Classify each given subject line (or each line read from stdin when no
arguments are given) and print its kind and description. Exits non-zero
when any line falls through to the unrecognized fallback.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					lines = append(lines, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			unrecognized := 0
			for _, line := range lines {
				s := subject.Classify(line)
				if _, ok := s.(subject.Simple); ok {
					unrecognized++
				}
				fmt.Printf("%s\t%s\n", ui.KindLabel(s), s.Description())
			}

			if unrecognized > 0 {
				return fmt.Errorf("%d unrecognized subject(s)", unrecognized)
			}
			return nil
		},
	}
}
