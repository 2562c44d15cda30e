package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finopsforge/azcm/internal/message"
	"github.com/finopsforge/azcm/pkg/azure"
	"github.com/finopsforge/azcm/pkg/outputters"
	"github.com/finopsforge/azcm/pkg/report"
)

var subscriptionFlag string

var recommendationsCmd = &cobra.Command{
	Use:     "recommendations",
	Aliases: []string{"recs"},
	Short:   "Generate the VM cost-optimization recommendation report",
	Long: `Queries Azure Resource Graph for Advisor cost recommendations, virtual
machine metadata and network interface configuration, joins them per
recommendation, and writes the report to a timestamped CSV file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		subscriptionIDs := splitSubscriptions(subscriptionFlag)
		if len(subscriptionIDs) == 0 {
			return fmt.Errorf("no subscription id given")
		}

		arg, err := azure.NewARGClient(ctx)
		if err != nil {
			message.Error("Could not authenticate to Azure: %v", err)
			return err
		}

		subs, err := azure.NewSubscriptionClient()
		if err != nil {
			message.Error("Could not create subscription client: %v", err)
			return err
		}

		runner := &report.Runner{
			Queries:  arg,
			Names:    subs,
			Progress: message.Progress,
		}

		rows, err := runner.Run(ctx, subscriptionIDs)
		if err != nil {
			message.Error("Report run failed: %v", err)
			return err
		}

		fmt.Print(outputters.Table(rows))

		path, err := outputters.WriteCSV(rows, viper.GetString("output"))
		if err != nil {
			message.Error("Could not write report file: %v", err)
			return err
		}

		message.Success("Wrote %d recommendation rows to %s", len(rows), path)
		return nil
	},
}

func splitSubscriptions(flag string) []string {
	var ids []string
	for _, id := range strings.Split(flag, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func init() {
	recommendationsCmd.Flags().StringVarP(&subscriptionFlag, "subscription", "s", "", "subscription id, or a comma-separated list of ids")
	recommendationsCmd.MarkFlagRequired("subscription")
	rootCmd.AddCommand(recommendationsCmd)
}
