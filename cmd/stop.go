package cmd

import (
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:          "stop",
	Short:        "Stop the background poller",
	RunE:         stopCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(stopCmd)
}

func stopCmdF(cmd *cobra.Command, args []string) error {
	// 获取应用名
	_, dir := getAppDir()

	// 关闭服务
	pid, err := readLock(dir)
	if err != nil {
		return err
	}
	if err := exec.Command("kill", pid).Run(); err != nil {
		return fmt.Errorf("unable to stop [PID] %s: %w", pid, err)
	}
	log.Infof("Server stop, [PID] %s", pid)

	return nil
}
