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

package understore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type understoreTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *understoreTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func TestUnderStore(t *testing.T) {
	suite.Run(t, new(understoreTestSuite))
}

func (suite *understoreTestSuite) TestGetByScheme() {
	store, err := Get("/mnt/tier/data", nil)
	suite.assert.NoError(err)
	suite.assert.Equal("local", store.Name())

	store, err = Get("file:///mnt/tier/data", nil)
	suite.assert.NoError(err)
	suite.assert.Equal("local", store.Name())

	store, err = Get("s3://bucket/prefix", nil)
	suite.assert.NoError(err)
	suite.assert.Equal("s3", store.Name())

	_, err = Get("hdfs://nn:9000/data", nil)
	suite.assert.Error(err)
}

func (suite *understoreTestSuite) TestStripScheme() {
	suite.assert.Equal("/mnt/tier", StripScheme("file:///mnt/tier"))
	suite.assert.Equal("/mnt/tier", StripScheme("/mnt/tier"))
	suite.assert.Equal("s3://bucket/key", StripScheme("s3://bucket/key"))
}

func (suite *understoreTestSuite) TestSplitPath() {
	bucket, key, err := splitPath("s3://bucket/a/b/c")
	suite.assert.NoError(err)
	suite.assert.Equal("bucket", bucket)
	suite.assert.Equal("a/b/c", key)

	bucket, key, err = splitPath("s3://bucket")
	suite.assert.NoError(err)
	suite.assert.Equal("bucket", bucket)
	suite.assert.Equal("", key)

	_, _, err = splitPath("/local/path")
	suite.assert.Error(err)
}

func (suite *understoreTestSuite) TestLocalStore() {
	dir := suite.T().TempDir()
	store := newLocalStore()

	target := filepath.Join(dir, "users", "42")
	exists, err := store.Exists(target)
	suite.assert.NoError(err)
	suite.assert.False(exists)

	err = store.MkdirAll(target)
	suite.assert.NoError(err)

	exists, err = store.Exists(target)
	suite.assert.NoError(err)
	suite.assert.True(exists)

	isFile, err := store.IsFile(target)
	suite.assert.NoError(err)
	suite.assert.False(isFile)

	file := filepath.Join(dir, "data.bin")
	err = os.WriteFile(file, []byte("tier"), 0644)
	suite.assert.NoError(err)

	isFile, err = store.IsFile(file)
	suite.assert.NoError(err)
	suite.assert.True(isFile)
}

func (suite *understoreTestSuite) TestLocalStoreFileScheme() {
	dir := suite.T().TempDir()
	store := newLocalStore()

	err := store.MkdirAll("file://" + filepath.Join(dir, "tmp"))
	suite.assert.NoError(err)

	exists, err := store.Exists("file://" + filepath.Join(dir, "tmp"))
	suite.assert.NoError(err)
	suite.assert.True(exists)
}
