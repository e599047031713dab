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
	"go.uber.org/mock/gomock"
)

type sessionTestSuite struct {
	suite.Suite
	assert *assert.Assertions
	tc     *testClient
}

func (suite *sessionTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
	suite.tc = newTestClient(suite.T())
}

func TestSession(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (suite *sessionTestSuite) TestNewRequiresAddress() {
	_, err := NewWithTransport(Options{}, suite.tc.transport)
	suite.assert.ErrorIs(err, ErrInvalidAddress)
}

func (suite *sessionTestSuite) TestNewRejectsBadAddress() {
	_, err := NewWithTransport(Options{Address: "direct://host:1:2"}, suite.tc.transport)
	suite.assert.ErrorIs(err, ErrInvalidAddress)
}

func (suite *sessionTestSuite) TestConnectIdempotent() {
	suite.tc.expectConnectLocalWorker()

	// a second connect must not touch the wire; gomock fails the test on
	// any unexpected call
	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.Equal(1, suite.tc.transport.masterDials)
	suite.assert.Equal(1, suite.tc.transport.workerDials)
}

func (suite *sessionTestSuite) TestConnectNoWorker() {
	suite.tc.expectConnectNoWorker()

	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.False(suite.tc.session.HasLocalWorker())
	suite.assert.Equal(0, suite.tc.transport.workerDials)
}

func (suite *sessionTestSuite) TestConnectIdentityFailureKeepsChannel() {
	suite.tc.master.EXPECT().Connect().Return(nil)
	suite.tc.master.EXPECT().GetUserID().Return(int64(0), rpc.NewConnError("GetUserID", errors.New("broken pipe")))

	err := suite.tc.session.Connect()
	suite.assert.Error(err)

	// retry reuses the open master channel, no second dial
	suite.tc.master.EXPECT().GetUserID().Return(testUserID, nil)
	suite.tc.master.EXPECT().GetWorker(gomock.Any(), gomock.Any()).
		Return(nil, rpc.ErrNoWorker).MinTimes(1).MaxTimes(2)
	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.Equal(1, suite.tc.transport.masterDials)
}

func (suite *sessionTestSuite) TestConnectWorkerAttachFailureNonFatal() {
	suite.tc.master.EXPECT().Connect().Return(nil)
	suite.tc.master.EXPECT().GetUserID().Return(testUserID, nil)
	suite.tc.master.EXPECT().GetWorker(gomock.Any(), gomock.Any()).
		Return(&rpc.NetAddress{Host: "localhost", Port: 29998}, nil)
	suite.tc.worker.EXPECT().Open().Return(errors.New("connection refused"))

	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.False(suite.tc.session.HasLocalWorker())
}

func (suite *sessionTestSuite) TestConnectWorkerPathFetchFailureNonFatal() {
	suite.tc.master.EXPECT().Connect().Return(nil)
	suite.tc.master.EXPECT().GetUserID().Return(testUserID, nil)
	suite.tc.master.EXPECT().GetWorker(gomock.Any(), gomock.Any()).
		Return(&rpc.NetAddress{Host: "localhost", Port: 29998}, nil)
	suite.tc.worker.EXPECT().Open().Return(nil)
	suite.tc.worker.EXPECT().DataRoot().Return("", rpc.NewConnError("DataRoot", errors.New("reset")))
	suite.tc.worker.EXPECT().Close().Return(nil)

	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.False(suite.tc.session.HasLocalWorker())

	root, err := suite.tc.session.DataRoot()
	suite.assert.NoError(err)
	suite.assert.Empty(root)
}

func (suite *sessionTestSuite) TestUserID() {
	suite.tc.expectConnectNoWorker()

	userID, err := suite.tc.session.UserID()
	suite.assert.NoError(err)
	suite.assert.Equal(testUserID, userID)
}

func (suite *sessionTestSuite) TestMasterFaultInvalidatesAndHeals() {
	suite.tc.expectConnectNoWorker()
	suite.tc.master.EXPECT().FileID("/a").Return(int32(0), rpc.NewConnError("FileID", errors.New("reset")))
	suite.tc.master.EXPECT().Close().Return(nil)

	_, err := suite.tc.session.FileID("/a")
	suite.assert.Error(err)

	// next operation reconnects from scratch
	suite.tc.expectConnectNoWorker()
	suite.tc.master.EXPECT().FileID("/a").Return(int32(4), nil)
	fileID, err := suite.tc.session.FileID("/a")
	suite.assert.NoError(err)
	suite.assert.Equal(int32(4), fileID)
	suite.assert.Equal(2, suite.tc.transport.masterDials)
}

func (suite *sessionTestSuite) TestWorkerLookupFaultFallsBackAndInvalidates() {
	suite.tc.master.EXPECT().Connect().Return(nil)
	suite.tc.master.EXPECT().GetUserID().Return(testUserID, nil)

	// the fault on the local lookup must not stop the remote fallback, and
	// either fault must close the master channel
	connErr := rpc.NewConnError("GetWorker", errors.New("broken pipe"))
	suite.tc.master.EXPECT().GetWorker(false, gomock.Any()).Return(nil, connErr)
	suite.tc.master.EXPECT().GetWorker(true, "").Return(nil, connErr)
	suite.tc.master.EXPECT().Close().Return(nil)

	suite.assert.Error(suite.tc.session.Connect())

	// next connect redials from scratch
	suite.tc.expectConnectNoWorker()
	suite.assert.NoError(suite.tc.session.Connect())
	suite.assert.Equal(2, suite.tc.transport.masterDials)
}

func (suite *sessionTestSuite) TestCloseFlushesLedger() {
	suite.tc.expectConnectLocalWorker()
	suite.assert.NoError(suite.tc.session.Connect())

	suite.tc.session.ReleaseSpace(1, 500)
	suite.tc.session.ReleaseSpace(2, 300)

	// each tier's balance goes back attributed to that tier
	suite.tc.worker.EXPECT().ReturnSpace(int64(1), testUserID, int64(500)).Return(nil)
	suite.tc.worker.EXPECT().ReturnSpace(int64(2), testUserID, int64(300)).Return(nil)
	suite.tc.worker.EXPECT().Close().Return(nil)
	suite.tc.master.EXPECT().Close().Return(nil)

	suite.assert.NoError(suite.tc.session.Close())
}

func (suite *sessionTestSuite) TestCloseWithoutConnect() {
	suite.assert.NoError(suite.tc.session.Close())
}

func (suite *sessionTestSuite) TestCoordinationModeFlag() {
	session, err := NewWithTransport(Options{Address: "coord://zk:2181"}, suite.tc.transport)
	suite.assert.NoError(err)
	suite.assert.True(session.IsCoordinated())
	suite.assert.False(suite.tc.session.IsCoordinated())
}
