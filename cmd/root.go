/*
   Licensed under the MIT License <http://opensource.org/licenses/MIT>.

   Copyright © 2023-2026 TierStore Project Contributors

   Permission is hereby granted, free of charge, to any person obtaining a copy
   of this software and associated documentation files (the "Software"), to deal
   in the Software without restriction, including without limitation the rights
   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
   copies of the Software, and to permit persons to whom the Software is
   furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in all
   copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
   SOFTWARE
*/

package cmd

import (
	"errors"
	"fmt"

	"github.com/tierstore/tierstore/client"
	"github.com/tierstore/tierstore/common"
	"github.com/tierstore/tierstore/common/config"
	"github.com/tierstore/tierstore/common/log"

	"github.com/spf13/cobra"
)

var configFilePath string

// LogOptions is the "logging" config section
type LogOptions struct {
	Type             string `config:"type" yaml:"type,omitempty"`
	LogLevel         string `config:"level" yaml:"level,omitempty"`
	LogFilePath      string `config:"file-path" yaml:"file-path,omitempty"`
	MaxLogFileSizeMB uint64 `config:"max-file-size-mb" yaml:"max-file-size-mb,omitempty"`
	LogFileCount     uint64 `config:"file-count" yaml:"file-count,omitempty"`
}

var rootCmd = &cobra.Command{
	Use:               "tierstore",
	Short:             "TierStore is the client for a memory-centric tiered storage cluster.",
	Long:              "TierStore is the client for a memory-centric tiered storage cluster. It talks to the cluster's metadata master and to the worker on the local node, and serves file and block operations including short-circuit reads of locally resident blocks.",
	Version:           common.TierStoreVersion,
	FlagErrorHandling: cobra.ExitOnError,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("missing command options\n\nDid you mean this?\n\ttierstore fs ls /\n\nRun 'tierstore --help' for usage")
	},
}

// initConfigAndLogging loads the config file given on the command line and
// brings up the logger from the "logging" section
func initConfigAndLogging() error {
	if configFilePath != "" {
		if err := config.ReadFromConfigFile(configFilePath); err != nil {
			return fmt.Errorf("invalid config file [%v]", err)
		}
	}

	logOpts := LogOptions{}
	if err := config.UnmarshalKey("logging", &logOpts); err != nil {
		return err
	}

	logLevel := common.ELogLevelWarning
	if logOpts.LogLevel != "" {
		logLevel = common.LogLevelFromString(logOpts.LogLevel)
		if logLevel == common.ELogLevelInvalid {
			return fmt.Errorf("invalid log level [%s]", logOpts.LogLevel)
		}
	}

	err := log.SetDefaultLogger(logOpts.Type, common.LogConfig{
		Level:       logLevel,
		FilePath:    logOpts.LogFilePath,
		MaxFileSize: logOpts.MaxLogFileSizeMB,
		FileCount:   logOpts.LogFileCount,
		Tag:         common.ClientName,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger [%v]", err)
	}
	return nil
}

// newSession builds a session from the "client" config section
func newSession() (*client.Session, error) {
	if err := initConfigAndLogging(); err != nil {
		return nil, err
	}

	opts := client.DefaultOptions()
	if err := config.UnmarshalKey("client", &opts); err != nil {
		return nil, err
	}

	session, err := client.New(opts)
	if err != nil {
		log.Err("newSession : Failed to create session [%v]", err)
		return nil, err
	}
	return session, nil
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Err("Execute : [%v]", err)
	}
	_ = log.Destroy()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config-file", "",
		"Configures the path of the YAML config file.")
	config.BindPFlag("config-file", rootCmd.PersistentFlags().Lookup("config-file"))
}
