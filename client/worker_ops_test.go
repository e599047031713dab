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
	"os"
	"path/filepath"
	"testing"

	"github.com/tierstore/tierstore/common"
	"github.com/tierstore/tierstore/internal/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type workerOpsTestSuite struct {
	suite.Suite
	assert   *assert.Assertions
	tc       *testClient
	tierDir  string
	underDir string
}

func (suite *workerOpsTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
	suite.tc = newTestClient(suite.T())
	suite.tierDir = suite.T().TempDir()
	suite.underDir = filepath.Join(suite.T().TempDir(), "underfs", "users", "7")

	suite.tc.master.EXPECT().Connect().Return(nil)
	suite.tc.master.EXPECT().GetUserID().Return(testUserID, nil)
	suite.tc.master.EXPECT().GetWorker(gomock.Any(), gomock.Any()).
		Return(&rpc.NetAddress{Host: "localhost", Port: 29998}, nil)
	suite.tc.worker.EXPECT().Open().Return(nil)
	suite.tc.worker.EXPECT().DataRoot().Return(suite.tierDir, nil)
	suite.tc.worker.EXPECT().UserTempPath(testUserID).Return("users/7", nil)
	suite.tc.worker.EXPECT().UserUnderStoreTempPath(testUserID).Return(suite.underDir, nil)
	suite.assert.NoError(suite.tc.session.Connect())
}

func TestWorkerOps(t *testing.T) {
	suite.Run(t, new(workerOpsTestSuite))
}

func (suite *workerOpsTestSuite) TestCreateUserTempDirCreates() {
	suite.tc.worker.EXPECT().TierDirInfo(int64(1)).
		Return(&rpc.TierDirInfo{TierID: 1, Path: suite.tierDir}, nil)

	path, err := suite.tc.session.CreateUserTempDir(1)
	suite.assert.NoError(err)
	suite.assert.Equal(common.JoinUnixFilepath(suite.tierDir, "users/7"), path)
	suite.assert.True(common.DirectoryExists(path))
}

func (suite *workerOpsTestSuite) TestCreateUserTempDirReusesExisting() {
	// the tier dir descriptor is fetched once; the second call finds the
	// folder already present and leaves it alone
	suite.tc.worker.EXPECT().TierDirInfo(int64(1)).
		Return(&rpc.TierDirInfo{TierID: 1, Path: suite.tierDir}, nil).Times(1)

	first, err := suite.tc.session.CreateUserTempDir(1)
	suite.assert.NoError(err)
	second, err := suite.tc.session.CreateUserTempDir(1)
	suite.assert.NoError(err)
	suite.assert.Equal(first, second)
	suite.assert.True(common.DirectoryExists(first))
}

func (suite *workerOpsTestSuite) TestCreateUserTempDirFileCollision() {
	// a stale file on the folder path cannot silently become the temp dir
	suite.assert.NoError(os.MkdirAll(filepath.Join(suite.tierDir, "users"), 0775))
	suite.assert.NoError(os.WriteFile(filepath.Join(suite.tierDir, "users", "7"), []byte("stale"), 0644))

	suite.tc.worker.EXPECT().TierDirInfo(int64(1)).
		Return(&rpc.TierDirInfo{TierID: 1, Path: suite.tierDir}, nil)

	_, err := suite.tc.session.CreateUserTempDir(1)
	suite.assert.Error(err)
}

func (suite *workerOpsTestSuite) TestCreateUserUnderStoreTempDir() {
	path, err := suite.tc.session.CreateUserUnderStoreTempDir()
	suite.assert.NoError(err)
	suite.assert.Equal(suite.underDir, path)
	suite.assert.True(common.DirectoryExists(path))
}
