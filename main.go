package main

import (
	// 外部依赖
	"log"
	"os"

	godotenv "github.com/joho/godotenv"
	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"

	// 内部引用
	approvals "github.com/scienceol/labdesk/cmd/approvals"
	auth "github.com/scienceol/labdesk/cmd/auth"
	dashboard "github.com/scienceol/labdesk/cmd/dashboard"
	labs "github.com/scienceol/labdesk/cmd/labs"
	maintenance "github.com/scienceol/labdesk/cmd/maintenance"
	research "github.com/scienceol/labdesk/cmd/research"
	reserve "github.com/scienceol/labdesk/cmd/reserve"
	tools "github.com/scienceol/labdesk/cmd/tools"
	config "github.com/scienceol/labdesk/internal/config"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

func main() {
	rootCtx := utils.SetupSignalContext()
	root := &cobra.Command{
		SilenceUsage:      true,
		Short:             "LabDesk",
		Long:              "LabDesk 实验室管理终端客户端",
		PersistentPreRunE: initGlobalResource,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPostRunE: cleanGlobalResource,
	}
	root.SetContext(rootCtx)
	root.AddCommand(auth.New())
	root.AddCommand(labs.New())
	root.AddCommand(reserve.New())
	root.AddCommand(dashboard.New())
	root.AddCommand(tools.New())
	root.AddCommand(maintenance.New())
	root.AddCommand(approvals.New())
	root.AddCommand(research.New())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initGlobalResource(_ *cobra.Command, _ []string) error {
	// 初始化全局环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - using environment variables")
	}

	v := viper.NewWithOptions(viper.ExperimentalBindStruct())
	v.AutomaticEnv()

	conf := config.Global()
	if err := v.Unmarshal(conf); err != nil {
		log.Fatal(err)
	}
	if err := config.LoadDynamic(conf.Backend.DynamicConfigPath); err != nil {
		log.Fatal(err)
	}

	// 日志初始化
	logger.Init(&logger.LogConfig{
		Path:     conf.Log.LogPath,
		LogLevel: conf.Log.LogLevel,
		ServiceEnv: logger.ServiceEnv{
			Platform: conf.Server.Platform,
			Service:  conf.Server.Service,
			Env:      conf.Server.Env,
		},
	})

	return nil
}

func cleanGlobalResource(_ *cobra.Command, _ []string) error {
	// 服务退出清理资源
	logger.Close()
	return nil
}
