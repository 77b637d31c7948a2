package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/picoforge/picoforge/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:     "list <features|boards|configs>",
	Aliases: []string{"l"},
	Short:   "List available features, boards or configuration items",
	Long: `List the entries of one of the generator's catalogs.

Examples:
  picoforge list features             Features in catalog order
  picoforge list boards               Boards discovered in the SDK
  picoforge list features -o json     Machine-readable output
  picoforge list configs --tsv pico_configs.tsv`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"features", "boards", "configs"},
	RunE:      runList,
}

var listFlags struct {
	format      string
	catalogPath string
	sdkPath     string
	tsvPath     string
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().VarP(newChoiceValue(&listFlags.format, "table", "table", "json", "yaml"), "output", "o", "Output format (table, json, yaml)")
	listCmd.Flags().StringVarP(&listFlags.catalogPath, "catalog", "t", "", "YAML feature catalog overlay file")
	listCmd.Flags().StringVar(&listFlags.sdkPath, "sdk-path", "", "Pico SDK location (default $PICO_SDK_PATH)")
	listCmd.Flags().StringVar(&listFlags.tsvPath, "tsv", "pico_configs.tsv", "Configuration items table")
}

func runList(cmd *cobra.Command, args []string) error {
	logger := newLogger().WithComponent("list")

	switch args[0] {
	case "features":
		features, err := loadFeatureCatalog(listFlags.catalogPath)
		if err != nil {
			return err
		}
		return listFeatures(cmd, features)
	case "boards":
		boards, _ := loadBoardCatalog(listFlags.sdkPath, logger)
		return listBoards(cmd, boards)
	case "configs":
		items, err := catalog.LoadConfigItems(listFlags.tsvPath)
		if err != nil {
			return err
		}
		return listConfigs(cmd, items)
	default:
		return fmt.Errorf("unknown catalog %q (expected features, boards or configs)", args[0])
	}
}

type featureRow struct {
	ID              string   `json:"id" yaml:"id"`
	Label           string   `json:"label" yaml:"label"`
	Libraries       []string `json:"libraries" yaml:"libraries"`
	Conflicts       []string `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	RequiresConsole bool     `json:"requires_console,omitempty" yaml:"requires_console,omitempty"`
}

func listFeatures(cmd *cobra.Command, features *catalog.FeatureCatalog) error {
	rows := make([]featureRow, 0, features.Len())
	for _, f := range features.All() {
		rows = append(rows, featureRow{
			ID:              f.ID,
			Label:           f.Label,
			Libraries:       f.Libraries,
			Conflicts:       f.Conflicts,
			RequiresConsole: f.RequiresConsole,
		})
	}

	return emit(cmd, rows, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tLABEL\tLIBRARIES\tCONFLICTS")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Label, join(r.Libraries), join(r.Conflicts))
		}
	})
}

type boardRow struct {
	ID       string `json:"id" yaml:"id"`
	Platform string `json:"platform" yaml:"platform"`
	Header   string `json:"header" yaml:"header"`
}

func listBoards(cmd *cobra.Command, boards *catalog.BoardCatalog) error {
	rows := make([]boardRow, 0, boards.Len())
	for _, b := range boards.All() {
		rows = append(rows, boardRow{ID: b.ID, Platform: b.Platform, Header: b.Header})
	}

	return emit(cmd, rows, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tPLATFORM\tHEADER")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Platform, r.Header)
		}
	})
}

func listConfigs(cmd *cobra.Command, items []catalog.ConfigItem) error {
	return emit(cmd, items, func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "NAME\tTYPE\tDEFAULT\tDESCRIPTION")
		for _, c := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Type, c.Default, c.Description)
		}
	})
}

// emit writes rows in the requested output format. Table output goes through
// a tabwriter; json and yaml marshal the row slice directly.
func emit(cmd *cobra.Command, rows any, table func(w *tabwriter.Writer)) error {
	out := cmd.OutOrStdout()

	switch listFlags.format {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	case "table":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		table(w)
		return w.Flush()
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", listFlags.format)
	}

	return nil
}

func join(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	out := values[0]
	for _, v := range values[1:] {
		out += "," + v
	}
	return out
}
