package cli

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wisdomalbert/portfolio/internal/content"
)

type skillDoc struct {
	Category string   `yaml:"category"`
	Icon     string   `yaml:"icon"`
	Items    []string `yaml:"items"`
}

type tablesDoc struct {
	Skills      []skillDoc           `yaml:"skills"`
	Experiences []content.Experience `yaml:"experiences"`
	Education   []content.Education  `yaml:"education"`
}

func contentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the page data tables as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return DumpContent(cmd.OutOrStdout())
		},
	}
}

// DumpContent writes the three data tables to w as YAML.
func DumpContent(w io.Writer) error {
	doc := tablesDoc{
		Experiences: content.Experiences(),
		Education:   content.EducationHistory(),
	}
	for _, s := range content.Skills() {
		doc.Skills = append(doc.Skills, skillDoc{
			Category: s.Category,
			Icon:     s.Icon.String(),
			Items:    s.Items,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
