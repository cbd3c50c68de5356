package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stage       string   `json:"stage"`
	Enabled     bool     `json:"enabled"`
	Aliases     []string `json:"aliases"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List conversion rules",
		Long: `List the conversion rules in execution order with their IDs, names,
aliases and whether the current configuration enables them. Any of the ID,
name or alias is accepted by --enable, --disable and the rules: section of
the configuration file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != formatJSON {
				return &UsageError{Msg: fmt.Sprintf("unknown format %q; valid formats: text, json", format)}
			}

			cfg, _, err := loadConfig(cmd, &config.Config{})
			if err != nil {
				return err
			}

			infos := collectRuleInfos(convert.DefaultRegistry, cfg)

			if format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), infos)
			}

			logger := logging.NewInteractiveWithWriter(cmd.OutOrStdout())
			logger.Info("conversion rules")
			for _, info := range infos {
				logger.Info(info.ID,
					logging.FieldName, info.Name,
					logging.FieldStage, info.Stage,
					logging.FieldEnabled, info.Enabled,
					logging.FieldAliases, strings.Join(info.Aliases, ","),
					logging.FieldDescription, info.Description,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// collectRuleInfos describes every rule in registry, marking the ones cfg enables.
func collectRuleInfos(registry *convert.Registry, cfg *config.Config) []ruleInfo {
	enabled := make(map[string]bool)
	for _, rr := range convert.ResolveRules(registry, cfg) {
		enabled[rr.Rule.ID()] = true
	}

	rules := registry.Rules()
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		aliases := registry.Aliases(rule.ID())
		if aliases == nil {
			aliases = []string{}
		}
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Stage:       rule.Stage().String(),
			Enabled:     enabled[rule.ID()],
			Aliases:     aliases,
		})
	}
	return infos
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, infos []ruleInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
