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
	"testing"

	"github.com/tierstore/tierstore/internal/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type locksTestSuite struct {
	suite.Suite
	assert *assert.Assertions
	tc     *testClient
}

func (suite *locksTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
	suite.tc = newTestClient(suite.T())
	suite.tc.expectConnectLocalWorker()
	suite.assert.NoError(suite.tc.session.Connect())
}

func TestLocks(t *testing.T) {
	suite.Run(t, new(locksTestSuite))
}

func (suite *locksTestSuite) TestMultiplexing() {
	// two local holders, exactly one worker lock and one worker unlock
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil).Times(1)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).Return(nil).Times(1)

	h1 := suite.tc.session.NewLockHandle()
	h2 := suite.tc.session.NewLockHandle()
	suite.assert.NotEqual(h1, h2)

	suite.assert.True(suite.tc.session.LockBlock(9, h1))
	suite.assert.True(suite.tc.session.LockBlock(9, h2))
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())

	suite.assert.True(suite.tc.session.UnlockBlock(9, h1))
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())
	suite.assert.True(suite.tc.session.UnlockBlock(9, h2))
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *locksTestSuite) TestUnlockUntrackedIsNoop() {
	suite.assert.True(suite.tc.session.UnlockBlock(123, 5))
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *locksTestSuite) TestLockRejectsBadArgs() {
	handle := suite.tc.session.NewLockHandle()
	suite.assert.False(suite.tc.session.LockBlock(0, handle))
	suite.assert.False(suite.tc.session.LockBlock(-3, handle))
	suite.assert.False(suite.tc.session.LockBlock(9, -1))
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *locksTestSuite) TestLockRPCFailureLeavesNoEntry() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).
		Return(rpc.NewConnError("LockBlock", errors.New("reset")))
	suite.tc.worker.EXPECT().Close().Return(nil)

	handle := suite.tc.session.NewLockHandle()
	suite.assert.False(suite.tc.session.LockBlock(9, handle))
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}

func (suite *locksTestSuite) TestUnlockRPCFailureKeepsBookkeeping() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).
		Return(rpc.NewConnError("UnlockBlock", errors.New("reset")))
	suite.tc.worker.EXPECT().Close().Return(nil)

	handle := suite.tc.session.NewLockHandle()
	suite.assert.True(suite.tc.session.LockBlock(9, handle))
	suite.assert.False(suite.tc.session.UnlockBlock(9, handle))
	// the failed unlock must not silently drop the entry
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())
}

func (suite *locksTestSuite) TestLockDeclineKeepsWorker() {
	// a domain-level refusal fails the lock but is no reason to tear down
	// the worker attachment
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).
		Return(&rpc.DeclineError{Op: "LockBlock", Reason: "block evicted"})

	handle := suite.tc.session.NewLockHandle()
	suite.assert.False(suite.tc.session.LockBlock(9, handle))
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
	suite.assert.True(suite.tc.session.HasLocalWorker())
}

func (suite *locksTestSuite) TestUnlockDeclineKeepsWorker() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().UnlockBlock(int64(9), testUserID).
		Return(&rpc.DeclineError{Op: "UnlockBlock", Reason: "not held"})

	handle := suite.tc.session.NewLockHandle()
	suite.assert.True(suite.tc.session.LockBlock(9, handle))
	suite.assert.False(suite.tc.session.UnlockBlock(9, handle))
	suite.assert.Equal(1, suite.tc.session.lockedBlockCount())
	suite.assert.True(suite.tc.session.HasLocalWorker())
}

func (suite *locksTestSuite) TestHandlesMonotonic() {
	prev := suite.tc.session.NewLockHandle()
	for i := 0; i < 10; i++ {
		next := suite.tc.session.NewLockHandle()
		suite.assert.Greater(next, prev)
		prev = next
	}
}

func (suite *locksTestSuite) TestDistinctBlocksLockIndependently() {
	suite.tc.worker.EXPECT().LockBlock(int64(9), testUserID).Return(nil)
	suite.tc.worker.EXPECT().LockBlock(int64(10), testUserID).Return(nil)

	suite.assert.True(suite.tc.session.LockBlock(9, suite.tc.session.NewLockHandle()))
	suite.assert.True(suite.tc.session.LockBlock(10, suite.tc.session.NewLockHandle()))
	suite.assert.Equal(2, suite.tc.session.lockedBlockCount())
}

type locksNoWorkerTestSuite struct {
	suite.Suite
	assert *assert.Assertions
	tc     *testClient
}

func (suite *locksNoWorkerTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
	suite.tc = newTestClient(suite.T())
	suite.tc.expectConnectNoWorker()
	suite.assert.NoError(suite.tc.session.Connect())
}

func TestLocksNoWorker(t *testing.T) {
	suite.Run(t, new(locksNoWorkerTestSuite))
}

func (suite *locksNoWorkerTestSuite) TestLockNeedsLocalWorker() {
	handle := suite.tc.session.NewLockHandle()
	suite.assert.False(suite.tc.session.LockBlock(9, handle))
	suite.assert.Equal(0, suite.tc.session.lockedBlockCount())
}
