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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tierstore/tierstore/internal/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testTierID = int64(1)

type localReadTestSuite struct {
	suite.Suite
	assert    *assert.Assertions
	tc        *testClient
	blockPath string
}

func (suite *localReadTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
	suite.tc = newTestClient(suite.T())
	suite.tc.expectConnectLocalWorker()
	suite.assert.NoError(suite.tc.session.Connect())

	suite.blockPath = filepath.Join(suite.T().TempDir(), "block-9")
	err := os.WriteFile(suite.blockPath, []byte("0123456789"), 0644)
	suite.assert.NoError(err)
}

func TestLocalRead(t *testing.T) {
	suite.Run(t, new(localReadTestSuite))
}

func (suite *localReadTestSuite) blockInfo() *rpc.BlockFileInfo {
	return &rpc.BlockFileInfo{Path: suite.blockPath, SizeBytes: 10}
}

func (suite *localReadTestSuite) TestReadRange() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil)
	suite.tc.worker.EXPECT().AccessBlock(int64(9)).Return(nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil)

	buf, err := suite.tc.session.ReadLocalBlock(9, testTierID, 2, 4)
	suite.assert.NoError(err)
	suite.assert.NotNil(buf)
	suite.assert.Equal([]byte("2345"), buf.Data)
	suite.assert.Equal(int64(9), buf.BlockID)
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())

	buf.Close()
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestReadRestOfBlock() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil)
	suite.tc.worker.EXPECT().AccessBlock(int64(9)).Return(nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil)

	buf, err := suite.tc.session.ReadLocalBlock(9, testTierID, 6, -1)
	suite.assert.NoError(err)
	suite.assert.NotNil(buf)
	suite.assert.Equal([]byte("6789"), buf.Data)
	buf.Close()
}

func (suite *localReadTestSuite) TestInvalidArgsTouchNothing() {
	// no lock expectations registered; any RPC fails the test
	_, err := suite.tc.session.ReadLocalBlock(9, testTierID, -1, 4)
	suite.assert.ErrorIs(err, ErrInvalidArgument)

	_, err = suite.tc.session.ReadLocalBlock(9, testTierID, 0, -2)
	suite.assert.ErrorIs(err, ErrInvalidArgument)

	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestOutOfRangeReleasesLock() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil)

	_, err := suite.tc.session.ReadLocalBlock(9, testTierID, 4, 8)
	suite.assert.ErrorIs(err, ErrOutOfRange)
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestOffsetPastEndReleasesLock() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil)

	_, err := suite.tc.session.ReadLocalBlock(9, testTierID, 11, -1)
	suite.assert.ErrorIs(err, ErrOutOfRange)
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestBlockNotHeldLocally() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(nil, rpc.ErrNotFound)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil)

	buf, err := suite.tc.session.ReadLocalBlock(9, testTierID, 0, 4)
	suite.assert.NoError(err)
	suite.assert.Nil(buf)
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestLockFailureMeansNotAvailable() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).
		Return(rpc.NewConnError("LockBlock", errors.New("reset")))
	suite.tc.worker.EXPECT().Close().Return(nil)

	buf, err := suite.tc.session.ReadLocalBlock(9, testTierID, 0, 4)
	suite.assert.NoError(err)
	suite.assert.Nil(buf)
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestAccessNotifyBestEffort() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil)
	suite.tc.worker.EXPECT().AccessBlock(int64(9)).Return(errors.New("worker busy"))
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil)

	buf, err := suite.tc.session.ReadLocalBlock(9, testTierID, 0, 10)
	suite.assert.NoError(err)
	suite.assert.NotNil(buf)
	suite.assert.Equal([]byte("0123456789"), buf.Data)
	buf.Close()
}

func (suite *localReadTestSuite) TestCloseIdempotent() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil)
	suite.tc.worker.EXPECT().AccessBlock(int64(9)).Return(nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil).Times(1)

	buf, err := suite.tc.session.ReadLocalBlock(9, testTierID, 0, 4)
	suite.assert.NoError(err)
	buf.Close()
	buf.Close()
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *localReadTestSuite) TestSecondReaderSharesLock() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil).Times(1)
	suite.tc.worker.EXPECT().BlockFileInfo(int64(9), testTierID).Return(suite.blockInfo(), nil).Times(2)
	suite.tc.worker.EXPECT().AccessBlock(int64(9)).Return(nil).Times(2)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil).Times(1)

	first, err := suite.tc.session.ReadLocalBlock(9, testTierID, 0, 4)
	suite.assert.NoError(err)
	second, err := suite.tc.session.ReadLocalBlock(9, testTierID, 4, 4)
	suite.assert.NoError(err)
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())

	first.Close()
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())
	second.Close()
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}
