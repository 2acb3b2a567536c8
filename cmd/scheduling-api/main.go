package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PBLBot/scheduling-api/internal/profile"
	"github.com/PBLBot/scheduling-api/internal/version"
	"github.com/PBLBot/scheduling-api/server"
)

const greetingBanner = `
scheduling-api %s (%s)
listening on %s:%d
try: curl 'http://localhost:%d/parse?text=tomorrow%%20at%%203pm'
`

var rootCmd = &cobra.Command{
	Use:   "scheduling-api",
	Short: "Resolves natural-language scheduling phrases into concrete timestamps",
	Run: func(_ *cobra.Command, _ []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		instanceProfile := &profile.Profile{
			Mode: viper.GetString("mode"),
			Addr: viper.GetString("addr"),
			Port: viper.GetInt("port"),
		}
		instanceProfile.FromEnv()
		instanceProfile.Version = version.GetCurrentVersion(instanceProfile.Mode)
		if err := instanceProfile.Validate(); err != nil {
			fmt.Printf("invalid profile: %+v\n", err)
			return
		}

		s, err := server.NewServer(instanceProfile)
		if err != nil {
			fmt.Printf("failed to create server: %+v\n", err)
			return
		}

		fmt.Printf(greetingBanner, instanceProfile.Version, instanceProfile.Mode,
			instanceProfile.Addr, instanceProfile.Port, instanceProfile.Port)

		if err := s.Start(ctx); err != nil {
			fmt.Printf("server exited with error: %+v\n", err)
		}
	},
}

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("addr", "")
	viper.SetDefault("port", 8082)

	rootCmd.PersistentFlags().String("mode", "dev", `mode of server, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address of server")
	rootCmd.PersistentFlags().Int("port", 8082, "binding port of server")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("scheduling")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
