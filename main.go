package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"heart-haven/config"
	"heart-haven/database"
	"heart-haven/logger"
	"heart-haven/web"
	"heart-haven/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
	defer logger.CloseLogger()

	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warning("close database err:", err)
		}
	}()

	server := web.NewServer(db)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(db)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func resetSetting() {
	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB(db)

	settingService := service.NewSettingService(db)
	if err := settingService.ResetSettings(); err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting() {
	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB(db)

	settingService := service.NewSettingService(db)
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	basePath, err := settingService.GetBasePath()
	if err != nil {
		fmt.Println("get current base path failed, error info:", err)
	}

	userService := service.NewUserService(db)
	admin, err := userService.GetFirstAdmin()
	if err != nil {
		fmt.Println("get current admin info failed, error info:", err)
		return
	}

	fmt.Println("current panel settings as follows:")
	fmt.Println("username:", admin.Username)
	fmt.Println("port:", port)
	fmt.Println("base path:", basePath)
}

func main() {
	_ = godotenv.Load()

	var showFlag, resetFlag bool

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "heart-haven rewards panel",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Show or reset panel settings",
		Run: func(cmd *cobra.Command, args []string) {
			if resetFlag {
				resetSetting()
			}
			if showFlag {
				showSetting()
			}
			if !resetFlag && !showFlag {
				_ = cmd.Help()
			}
		},
	}
	settingCmd.Flags().BoolVar(&showFlag, "show", false, "show current settings")
	settingCmd.Flags().BoolVar(&resetFlag, "reset", false, "reset settings to defaults")

	rootCmd.AddCommand(versionCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
