package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"flexpool-info/config"
	"flexpool-info/core"
)

var daemon bool
var startCmd = &cobra.Command{
	Use:          "start",
	Short:        "Start polling the configured sensors",
	RunE:         startCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVarP(&daemon, "daemon", "d", false, "run with daemon?")
	RootCmd.RunE = startCmdF
}

func startCmdF(cmd *cobra.Command, args []string) error {
	// 后台启动
	if daemon {
		runDaemon(cmd)
	}

	// 加载配置文件
	cfg, err := loadConfig(cmd)
	if err != nil {
		log.Errorf("Error loading configuration: %v", err.Error())
		return err
	}
	initLogger(cfg.Logger)

	// 启动服务
	interruptChan := make(chan os.Signal, 1)
	return runServer(cfg, interruptChan)
}

func runDaemon(cmd *cobra.Command) {
	// 获取应用名
	app, dir := getAppDir()

	// 拿到启动命令并自启动
	bin := fmt.Sprintf("%s/%s", dir, app)
	command := exec.Command(bin, "start", "--config", getConfigPath(cmd))
	if err := command.Start(); err != nil {
		log.Fatalf("Unable to start daemon: %v", err)
	}

	// 打印日志
	log.Infof("Server start, [PID] %d running...", command.Process.Pid)
	if err := writeLock(dir, command.Process.Pid); err != nil {
		log.Fatalf("Unable to record daemon: %v", err)
	}
	daemon = false
	os.Exit(0)
}

func runServer(cfg *config.Config, interruptChan chan os.Signal) error {
	server := core.NewServer(cfg)
	defer server.Close()

	if err := server.Start(context.Background()); err != nil {
		log.Errorf("Unable to start: %v", err)
		return err
	}

	// wait for kill signal before attempting to gracefully shutdown
	// the running service
	signal.Notify(interruptChan, syscall.SIGINT, syscall.SIGTERM)
	<-interruptChan
	log.Info("Shutting down...")

	return nil
}

func initLogger(cfg *config.Logger) {
	log.SetFormatter(&log.TextFormatter{})

	// Output to stdout instead of the default stderr
	log.SetOutput(os.Stdout)

	if *cfg.Mode == "file" {
		file, err := os.OpenFile(*cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
		} else {
			log.Info("Failed to log to file, using default stdout")
		}
	}

	level, err := log.ParseLevel(*cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", *cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
