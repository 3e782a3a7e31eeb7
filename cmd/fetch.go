package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"flexpool-info/config"
	"flexpool-info/core"
	"flexpool-info/flexpool"
)

var fetchFlags struct {
	address      string
	token        string
	currency     string
	id           string
	nameOverride string
	endpoint     string
}

var fetchCmd = &cobra.Command{
	Use:          "fetch",
	Short:        "Fetch one miner address once and print the sensor",
	RunE:         fetchCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(fetchCmd)
	flags := fetchCmd.Flags()
	flags.StringVarP(&fetchFlags.address, "address", "a", "", "miner address")
	flags.StringVarP(&fetchFlags.token, "token", "t", "eth", "coin ticker")
	flags.StringVar(&fetchFlags.currency, "currency", "usd", "local currency")
	flags.StringVar(&fetchFlags.id, "id", "", "sensor id")
	flags.StringVar(&fetchFlags.nameOverride, "name-override", "", "display name")
	flags.StringVar(&fetchFlags.endpoint, "endpoint", config.DefaultEndpoint, "pool api endpoint")
	fetchCmd.MarkFlagRequired("address")
}

// sensorView 打印用的实体视图
type sensorView struct {
	Name              string                 `json:"name"`
	Icon              string                 `json:"icon"`
	State             interface{}            `json:"state"`
	UnitOfMeasurement string                 `json:"unit_of_measurement"`
	Attributes        map[string]interface{} `json:"attributes"`
}

func fetchCmdF(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{Api: &config.Api{Endpoint: &fetchFlags.endpoint}}
	cfg.SetDefaults()

	raw := map[string]interface{}{
		config.ConfMinerAddress:    fetchFlags.address,
		config.ConfToken:           fetchFlags.token,
		config.ConfCurrencyName:    fetchFlags.currency,
		config.ConfId:              fetchFlags.id,
		config.ConfNameOverride:    fetchFlags.nameOverride,
		config.ConfUpdateFrequency: "0",
	}
	sensor, err := core.SetupSensor(context.Background(), raw, flexpool.NewClient(cfg.Api))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sensorView{
		Name:              sensor.Name(),
		Icon:              sensor.Icon(),
		State:             sensor.State(),
		UnitOfMeasurement: sensor.UnitOfMeasurement(),
		Attributes:        sensor.Attributes(),
	})
}
