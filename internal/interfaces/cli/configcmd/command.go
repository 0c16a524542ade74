package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ticketsla/ticketsla/internal/infrastructure/config"
	"github.com/ticketsla/ticketsla/internal/interfaces/cli/bootstrap"
	"github.com/ticketsla/ticketsla/internal/shared/utils"
)

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long:  `Print the configuration the selected profile resolves to, with secrets masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig(*flags)
			if err != nil {
				return err
			}
			return Write(cmd.OutOrStdout(), cfg)
		},
	})

	return cmd
}

// Write encodes a masked copy of cfg as YAML.
func Write(w io.Writer, cfg *config.Config) error {
	masked := Masked(cfg)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&masked); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// Masked returns a copy of cfg with passwords and keys hidden.
func Masked(cfg *config.Config) config.Config {
	out := *cfg
	out.Database.URL = utils.MaskURLPassword(cfg.Database.URL)
	out.Auth.SecretKey = utils.MaskSecret(cfg.Auth.SecretKey)
	out.Redis.URL = utils.MaskURLPassword(cfg.Redis.URL)
	out.Redis.Password = utils.MaskSecret(cfg.Redis.Password)
	return out
}
