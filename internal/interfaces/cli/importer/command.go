package importer

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ticketsla/ticketsla/internal/infrastructure/database"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/bootstrap"
)

var (
	file  string
	force bool
)

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a ticket export",
		Long: `Import a CSV or XLSX ticket export into the store. A populated store is
left untouched unless --force is given, which replaces every ticket in one transaction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.Init(*flags)
			if err != nil {
				return err
			}
			defer bootstrap.Close(log)

			path := file
			if path == "" {
				path = cfg.Ingestion.SourcePath
			}
			if path == "" {
				return fmt.Errorf("no ticket export given (use --file or ingestion.source_path)")
			}

			result, err := bootstrap.NewImporter(database.Get(), cfg, nil, log).Run(cmd.Context(), path, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case result.Stale:
				fmt.Fprintf(out, "Store already populated; %s changed since the last import. Re-run with --force to replace it.\n", path)
			case result.Skipped:
				fmt.Fprintf(out, "Store already populated; nothing imported.\n")
			default:
				fmt.Fprintf(out, "Imported %d tickets from %s (sha256 %s)\n", result.Imported, result.Source, result.Checksum)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the .csv or .xlsx export (default: ingestion.source_path)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace existing tickets")

	return cmd
}
