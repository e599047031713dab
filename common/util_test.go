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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type utilTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *utilTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func TestUtil(t *testing.T) {
	suite.Run(t, new(utilTestSuite))
}

func (suite *utilTestSuite) TestCleanPath() {
	p, err := CleanPath("/a/b/c")
	suite.assert.NoError(err)
	suite.assert.Equal("/a/b/c", p)

	p, err = CleanPath("  /a//b/./c/ ")
	suite.assert.NoError(err)
	suite.assert.Equal("/a/b/c", p)

	p, err = CleanPath("/")
	suite.assert.NoError(err)
	suite.assert.Equal("/", p)

	_, err = CleanPath("")
	suite.assert.Error(err)

	_, err = CleanPath("a/b")
	suite.assert.Error(err)

	_, err = CleanPath("   ")
	suite.assert.Error(err)
}

func (suite *utilTestSuite) TestJoinUnixFilepath() {
	suite.assert.Equal("/a/b/c", JoinUnixFilepath("/a", "b", "c"))
	suite.assert.Equal("a/b", JoinUnixFilepath("a//", "/b/"))
}

func (suite *utilTestSuite) TestSanitizeName() {
	suite.assert.Equal("bucket-1_data.x", SanitizeName("bucket-1_data.x"))
	suite.assert.Equal("ab", SanitizeName("a/ b"))
	suite.assert.Equal("", SanitizeName("///"))
}

func (suite *utilTestSuite) TestGetLocalHostName() {
	host, err := GetLocalHostName()
	suite.assert.NoError(err)
	suite.assert.NotEmpty(host)
}

func (suite *utilTestSuite) TestLogLevelFromString() {
	suite.assert.Equal(ELogLevelDebug, LogLevelFromString("log_debug"))
	suite.assert.Equal(ELogLevelWarning, LogLevelFromString(""))
	suite.assert.Equal(ELogLevelInvalid, LogLevelFromString("bogus"))
}
