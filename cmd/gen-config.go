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
	"fmt"
	"os"

	"github.com/tierstore/tierstore/client"
	"github.com/tierstore/tierstore/common"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type defaultConfig struct {
	Logging LogOptions     `yaml:"logging"`
	Client  client.Options `yaml:"client"`
}

var genCfgOutputPath string

var genConfigCmd = &cobra.Command{
	Use:               "gen-config",
	Short:             "Generate default config file.",
	Long:              "Generate a config file pre-filled with the default values.",
	SuggestFor:        []string{"generate default config", "generate config"},
	Args:              cobra.ExactArgs(0),
	FlagErrorHandling: cobra.ExitOnError,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := defaultConfig{
			Logging: LogOptions{
				Type:     "base",
				LogLevel: common.ELogLevelWarning.String(),
			},
			Client: client.DefaultOptions(),
		}
		cfg.Client.Address = "direct://localhost:19998"

		rendered, err := yaml.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("failed to render config [%v]", err)
		}

		if genCfgOutputPath == "" {
			fmt.Print(string(rendered))
			return nil
		}

		err = os.WriteFile(genCfgOutputPath, rendered, 0644)
		if err != nil {
			return fmt.Errorf("failed to write file [%v]", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genConfigCmd)

	genConfigCmd.Flags().StringVarP(&genCfgOutputPath, "output", "o", "",
		"Write the generated config to this file instead of stdout")
}
