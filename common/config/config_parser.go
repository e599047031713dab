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

package config

import (
	"fmt"
	"io"

	"github.com/tierstore/tierstore/common/log"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config is the common package to handle all configuration related functions
// of the entire tool. Values are resolved with the usual viper precedence:
// explicit Set, flags, config file, defaults.

// STRUCT_TAG is the struct tag looked up when unmarshalling config sections
const STRUCT_TAG = "config"

// ConfigChangeEventHandler is the interface that must be implemented by any
// object that wants to be notified of changes in the config file
type ConfigChangeEventHandler interface {
	OnConfigChange()
}

type ConfigChangeEventHandlerFunc func()

func (handler ConfigChangeEventHandlerFunc) OnConfigChange() {
	handler()
}

type options struct {
	path      string
	listeners []ConfigChangeEventHandler
}

var userOptions options

// SetConfigFile : set config file name to be watched by viper
func SetConfigFile(configFilePath string) {
	userOptions.path = configFilePath
	viper.SetConfigType("yaml")
	viper.SetConfigFile(userOptions.path)
}

// ReadFromConfigFile is used to set the configFilePath and initialize the
// viper object
func ReadFromConfigFile(configFilePath string) error {
	userOptions.path = configFilePath
	viper.SetConfigFile(userOptions.path)
	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	WatchConfig()
	return nil
}

// ReadConfigFromReader : Load a yaml config from an in-memory reader,
// used heavily by tests
func ReadConfigFromReader(reader io.Reader) error {
	viper.SetConfigType("yaml")
	return viper.ReadConfig(reader)
}

func WatchConfig() {
	viper.WatchConfig()
	viper.OnConfigChange(func(_ fsnotify.Event) {
		log.Crit("WatchConfig : Config change detected")
		OnConfigChange()
	})
}

// AddConfigChangeEventListener function is used to register any ConfigChangeEventHandler
func AddConfigChangeEventListener(listener ConfigChangeEventHandler) {
	userOptions.listeners = append(userOptions.listeners, listener)
}

func OnConfigChange() {
	for _, listener := range userOptions.listeners {
		listener.OnConfigChange()
	}
}

// BindPFlag binds the key parameter to a particular flag
// For a hierarchical structure pass the keys separated by a .
func BindPFlag(key string, flag *pflag.Flag) {
	_ = viper.BindPFlag(key, flag)
}

// UnmarshalKey is used to obtain a subtree starting from the key parameter
// For a hierarchical structure pass the keys separated by a .
// For example to access "name" in the following structure:
//
//	auth:
//		name: value
//
// the key parameter should take on the value "auth.name"
func UnmarshalKey(key string, obj interface{}) error {
	err := viper.UnmarshalKey(
		key,
		obj,
		func(decodeConfig *mapstructure.DecoderConfig) { decodeConfig.TagName = STRUCT_TAG },
	)
	if err != nil {
		return fmt.Errorf("config error: unmarshalling [%v]", err)
	}
	return nil
}

// Unmarshal populates the passed object and all the exported fields
func Unmarshal(obj interface{}) error {
	err := viper.Unmarshal(
		obj,
		func(decodeConfig *mapstructure.DecoderConfig) { decodeConfig.TagName = STRUCT_TAG },
	)
	if err != nil {
		return fmt.Errorf("config error: unmarshalling [%v]", err)
	}
	return nil
}

func Set(key string, val string) {
	viper.Set(key, val)
}

func SetBool(key string, val bool) {
	viper.Set(key, val)
}

func IsSet(key string) bool {
	return viper.IsSet(key)
}

func ResetConfig() {
	viper.Reset()
	userOptions = options{
		path:      "",
		listeners: make([]ConfigChangeEventHandler, 0),
	}
}
