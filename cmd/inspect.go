package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/neo"
)

// inspectCmd prints one NEO found by exact primary designation or name.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show a single near-Earth object",
	Long: `Look one NEO up by its primary designation (--pdes) or by its IAU
name (--name). Matching is exact; with --verbose, every known close
approach of the object is listed as well.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("pdes", "", "primary designation to look up")
	inspectCmd.Flags().String("name", "", "IAU name to look up")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	pdes, _ := cmd.Flags().GetString("pdes")
	name, _ := cmd.Flags().GetString("name")
	if pdes == "" && name == "" {
		return fmt.Errorf("inspect needs --pdes or --name")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	var body *neo.Body
	var ok bool
	if pdes != "" {
		body, ok = cat.ByDesignation(pdes)
	} else {
		body, ok = cat.ByName(name)
	}
	if !ok {
		// Mirror lookup semantics: a miss is a report, not a failure.
		fmt.Fprintln(os.Stderr, "no matching NEOs exist in the database.")
		return nil
	}

	fmt.Println(body)
	if cfg.Verbose {
		for _, a := range body.Approaches {
			fmt.Println("- " + a.String())
		}
		if len(body.Approaches) == 0 {
			fmt.Println("(no recorded close approaches)")
		}
	}
	return nil
}
