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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v2"
)

type genConfigTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *genConfigTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func TestGenConfig(t *testing.T) {
	suite.Run(t, new(genConfigTestSuite))
}

func (suite *genConfigTestSuite) TestWritesDefaults() {
	outputPath := filepath.Join(suite.T().TempDir(), "config.yaml")

	rootCmd.SetArgs([]string{"gen-config", "-o", outputPath})
	err := rootCmd.Execute()
	suite.assert.NoError(err)

	raw, err := os.ReadFile(outputPath)
	suite.assert.NoError(err)

	parsed := defaultConfig{}
	err = yaml.Unmarshal(raw, &parsed)
	suite.assert.NoError(err)
	suite.assert.Equal("direct://localhost:19998", parsed.Client.Address)
	suite.assert.Equal(uint64(8), parsed.Client.QuotaUnitMb)
	suite.assert.Equal(uint64(1024), parsed.Client.BlockSizeMb)
	suite.assert.Equal("base", parsed.Logging.Type)
}
