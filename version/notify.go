// Package version provides unified mechanisms for application version tracking and update discovery.
package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/color"
	"github.com/tunegrab-cli/tunegrab/constant"
	"github.com/tunegrab-cli/tunegrab/key"
	"github.com/tunegrab-cli/tunegrab/log"
	"github.com/tunegrab-cli/tunegrab/network"
	"github.com/tunegrab-cli/tunegrab/style"
)

const latestReleaseURL = "https://api.github.com/repos/tunegrab-cli/tunegrab/releases/latest"

// Latest retrieves the most recent published release tag.
func Latest() (string, error) {
	resp, err := network.Client.Get(latestReleaseURL)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("parse latest release: %w", err)
	}
	return release.TagName, nil
}

// Notify displays a terminal alert if a more recent stable application version is available.
// Network or parse failures degrade silently; an update hint is never worth an error.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		log.Warnf("version check failed: %v", err)
		return
	}

	newer, err := Compare(latest, constant.Version)
	if err != nil || newer <= 0 {
		return
	}

	fmt.Printf("\n%s %s\n",
		style.Fg(color.HiGreen)("new version available:"),
		style.Bold(latest))
}
