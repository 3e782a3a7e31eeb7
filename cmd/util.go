package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"flexpool-info/config"
)

func getAppDir() (string, string) {
	app := strings.TrimLeft(os.Args[0], "./")
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		log.Panic(err)
	}
	return filepath.Base(app), dir
}

// lockPath 锁文件与可执行文件同目录
func lockPath(dir string) string {
	return filepath.Join(dir, lockFile)
}

func writeLock(dir string, pid int) error {
	file := lockPath(dir)
	if err := ioutil.WriteFile(file, []byte(fmt.Sprintf("%d", pid)), 0666); err != nil {
		return fmt.Errorf("unable to write lock file %q: %w", file, err)
	}
	return nil
}

func readLock(dir string) (string, error) {
	file := lockPath(dir)
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("unable to read lock file %q: %w", file, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getConfigPath(command *cobra.Command) string {
	configPath, _ := command.Flags().GetString("config")

	if configPath == "" {
		configPath = "config.json"
	}

	return configPath
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(getConfigPath(cmd))
}
