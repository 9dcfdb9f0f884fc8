package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/catalog"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/scorer"
)

func newListCommand() *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available use cases, dimensions, providers and formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			useCases := catalog.Builtin()

			if detail {
				writeUseCaseDetail(useCases)
			} else {
				names := make([]string, 0, len(useCases))
				for _, uc := range useCases {
					names = append(names, uc.Name)
				}
				writeList("Use Cases", names)
			}

			dimensions := make([]string, 0, len(scorer.DefaultSet()))
			for _, d := range scorer.DefaultSet() {
				dimensions = append(dimensions, d.Name())
			}
			writeList("Dimensions", dimensions)
			writeList("Providers", []string{"anthropic", "openai", "gemini", "ollama", "mock"})
			writeList("Formats", []string{"json", "table", "html", "markdown", "csv"})
			return nil
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "show use case descriptions and business metadata")
	return cmd
}

func writeList(title string, items []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{title})
	for _, item := range items {
		table.Append([]string{item})
	}
	table.Render()
}

func writeUseCaseDetail(useCases []core.UseCase) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Use Case", "Prompts", "Description", "Business Impact"})
	for _, uc := range useCases {
		impact := ""
		if uc.Metadata != nil {
			impact = uc.Metadata.BusinessImpact
		}
		table.Append([]string{
			uc.Name,
			fmt.Sprintf("%d", len(uc.Prompts)),
			uc.Description,
			impact,
		})
	}
	table.Render()

	for _, uc := range useCases {
		if uc.Metadata == nil {
			continue
		}
		fmt.Printf("\n%s\n", uc.Name)
		fmt.Printf("  Typical volume: %s\n", uc.Metadata.TypicalVolume)
		if len(uc.Metadata.KeyConsiderations) > 0 {
			fmt.Printf("  Key considerations: %s\n", strings.Join(uc.Metadata.KeyConsiderations, ", "))
		}
		if len(uc.Metadata.IntegrationPoints) > 0 {
			fmt.Printf("  Integration points: %s\n", strings.Join(uc.Metadata.IntegrationPoints, ", "))
		}
	}
}
