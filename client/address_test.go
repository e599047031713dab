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

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type addressTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *addressTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func TestAddress(t *testing.T) {
	suite.Run(t, new(addressTestSuite))
}

func (suite *addressTestSuite) TestDirectWithPath() {
	addr, coordMode, err := ParseAddress("direct://host:1234/a/b")
	suite.assert.NoError(err)
	suite.assert.Equal("host", addr.Host)
	suite.assert.Equal(1234, addr.Port)
	suite.assert.False(coordMode)
}

func (suite *addressTestSuite) TestCoord() {
	addr, coordMode, err := ParseAddress("coord://host:1234")
	suite.assert.NoError(err)
	suite.assert.Equal("host", addr.Host)
	suite.assert.Equal(1234, addr.Port)
	suite.assert.True(coordMode)
}

func (suite *addressTestSuite) TestDoubleColon() {
	_, _, err := ParseAddress("direct://host:1234:5678")
	suite.assert.ErrorIs(err, ErrInvalidAddress)
}

func (suite *addressTestSuite) TestColonInPathOk() {
	addr, _, err := ParseAddress("direct://host:1234/a:b")
	suite.assert.NoError(err)
	suite.assert.Equal(1234, addr.Port)
}

func (suite *addressTestSuite) TestBadInputs() {
	cases := []string{
		"",
		"host:1234",
		"http://host:1234",
		"direct://host",
		"direct://:1234",
		"direct://host:",
		"direct://host:notaport",
		"direct://host:0",
		"direct://host:70000",
	}
	for _, address := range cases {
		_, _, err := ParseAddress(address)
		suite.assert.ErrorIs(err, ErrInvalidAddress, "address %q", address)
	}
}
